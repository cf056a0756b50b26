package commands

import (
	"context"
	"time"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/domain/model/progress"
	"freightflow/internal/core/domain/model/shipment"
)

// AdvanceShipmentCommandHandler advances a booked shipment one execution
// step and records the step on the journey log.
type AdvanceShipmentCommandHandler struct {
	uowFactory ProgressUoWFactory
	clock      func() time.Time
}

// NewAdvanceShipmentCommandHandler creates a handler for shipment execution.
func NewAdvanceShipmentCommandHandler(uowFactory ProgressUoWFactory) AdvanceShipmentCommandHandler {
	return AdvanceShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the advance command.
func (h *AdvanceShipmentCommandHandler) Handle(ctx context.Context, cmd AdvanceShipmentCommand) error {
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

	var title string
	switch aggregate.Status() {
	case shipment.StatusConfirmed:
		err = aggregate.StartTransit()
		title = "Shipment in transit"
	default:
		err = aggregate.CompleteDelivery()
		title = "Shipment delivered"
	}
	if err != nil {
		return err
	}

	journey, err := uow.ProgressRepository().GetByShipment(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if err = journey.Append(progress.Entry{Title: title, At: h.clock()}); err != nil {
		return err
	}

	intent, err := notification.NewShipperIntent(aggregate.ShipperID(), notification.TemplateShipmentAdvanced, map[string]any{
		"shipmentId": aggregate.ID().String(),
		"status":     aggregate.Status().String(),
	})
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
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
