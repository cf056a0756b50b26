package commands

import (
	"context"

	"freightflow/internal/core/domain/model/notification"
)

// RejectShipmentCommandHandler declines a shipment request outright.
type RejectShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewRejectShipmentCommandHandler creates a handler for shipment rejection.
func NewRejectShipmentCommandHandler(uowFactory ShipmentUoWFactory) RejectShipmentCommandHandler {
	return RejectShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h *RejectShipmentCommandHandler) Handle(ctx context.Context, cmd RejectShipmentCommand) error {
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

	if err = aggregate.Reject(); err != nil {
		return err
	}

	intent, err := notification.NewShipperIntent(aggregate.ShipperID(), notification.TemplateShipmentRejected, map[string]any{
		"shipmentId": aggregate.ID().String(),
	})
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Enqueue(ctx, intent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
