package commands

import (
	"context"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/domain/model/shipment"
)

// RequestShipmentCommandHandler creates the shipment in REQUESTED status and
// queues a broadcast so the operations team picks it up.
type RequestShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewRequestShipmentCommandHandler creates a handler for shipment requests.
func NewRequestShipmentCommandHandler(uowFactory ShipmentUoWFactory) RequestShipmentCommandHandler {
	return RequestShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment request command.
func (h *RequestShipmentCommandHandler) Handle(ctx context.Context, cmd RequestShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newShipment, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.Actor().SubjectID(), cmd.Details(), cmd.EwayBillRef())
	if err != nil {
		return err
	}

	intent, err := notification.NewAdminBroadcast(notification.TemplateShipmentRequested, map[string]any{
		"shipmentId": newShipment.ID().String(),
		"shipperId":  newShipment.ShipperID().String(),
	})
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Enqueue(ctx, intent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
