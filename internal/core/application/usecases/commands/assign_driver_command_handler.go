package commands

import (
	"context"
	"time"

	"freightflow/internal/core/domain/model/notification"
)

// AssignDriverCommandHandler records the driver and vehicle on the
// shipment's journey log.
type AssignDriverCommandHandler struct {
	uowFactory ProgressUoWFactory
	clock      func() time.Time
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory ProgressUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the driver assignment command. The journey log only
// exists for confirmed shipments, so a NotFound here doubles as the state
// guard.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ShipmentRepository().GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	journey, err := uow.ProgressRepository().GetByShipment(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if err = journey.AssignDriver(cmd.Driver(), h.clock()); err != nil {
		return err
	}

	intent, err := notification.NewShipperIntent(aggregate.ShipperID(), notification.TemplateDriverAssigned, map[string]any{
		"shipmentId":    aggregate.ID().String(),
		"driverName":    cmd.Driver().DriverName,
		"vehicleNumber": cmd.Driver().VehicleNumber,
	})
	if err != nil {
		return err
	}

	if err = uow.ProgressRepository().Update(ctx, journey); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Enqueue(ctx, intent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
