package commands

import (
	"context"
	"errors"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/domain/model/offer"
	"freightflow/internal/pkg/errs"
)

// OfferShipmentCommandHandler issues a pending offer on a negotiating
// shipment and moves the shipment to OFFER_SENT.
type OfferShipmentCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewOfferShipmentCommandHandler creates a handler for offer issuance.
func NewOfferShipmentCommandHandler(uowFactory OfferUoWFactory) OfferShipmentCommandHandler {
	return OfferShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer issuance command. The shipment row is locked
// first so a concurrent response or modification on the same shipment cannot
// interleave.
func (h *OfferShipmentCommandHandler) Handle(ctx context.Context, cmd OfferShipmentCommand) error {
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

	_, err = uow.OfferRepository().GetPendingByShipment(ctx, cmd.ShipmentID())
	if err == nil {
		return errs.NewInvalidStateError("shipment", aggregate.Status().String(), "issue offer over pending offer")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newOffer, err := offer.NewOffer(
		cmd.OfferID(), aggregate.ID(), aggregate.ShipperID(),
		cmd.Price(), cmd.PickupDate(), cmd.DeliveryDate())
	if err != nil {
		return err
	}

	if err = aggregate.MarkOfferSent(); err != nil {
		return err
	}

	intent, err := notification.NewShipperIntent(aggregate.ShipperID(), notification.TemplateOfferIssued, map[string]any{
		"shipmentId": aggregate.ID().String(),
		"offerId":    newOffer.ID().String(),
		"price":      newOffer.Price(),
	})
	if err != nil {
		return err
	}

	if err = uow.OfferRepository().Add(ctx, newOffer); err != nil {
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
