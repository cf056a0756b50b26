package commands

import (
	"context"

	"freightflow/internal/core/domain/model/notification"
)

// UpdateOfferCommandHandler revises the terms of a pending offer.
type UpdateOfferCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewUpdateOfferCommandHandler creates a handler for offer revision.
func NewUpdateOfferCommandHandler(uowFactory OfferUoWFactory) UpdateOfferCommandHandler {
	return UpdateOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer revision command. The parent shipment row is
// locked before the offer is touched so a concurrent accept cannot race the
// revision.
func (h *UpdateOfferCommandHandler) Handle(ctx context.Context, cmd UpdateOfferCommand) error {
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

	aggregate, err := uow.OfferRepository().Get(ctx, cmd.OfferID())
	if err != nil {
		return err
	}

	if _, err = uow.ShipmentRepository().GetForUpdate(ctx, aggregate.ShipmentID()); err != nil {
		return err
	}

	// The first read ran before the shipment lock was held. Re-read now that
	// commands on this shipment serialize behind us.
	aggregate, err = uow.OfferRepository().Get(ctx, cmd.OfferID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateTerms(cmd.Price(), cmd.PickupDate(), cmd.DeliveryDate()); err != nil {
		return err
	}

	intent, err := notification.NewShipperIntent(aggregate.ShipperID(), notification.TemplateOfferUpdated, map[string]any{
		"shipmentId": aggregate.ShipmentID().String(),
		"offerId":    aggregate.ID().String(),
		"price":      aggregate.Price(),
	})
	if err != nil {
		return err
	}

	if err = uow.OfferRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Enqueue(ctx, intent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
