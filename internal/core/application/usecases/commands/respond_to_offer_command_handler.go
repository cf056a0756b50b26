package commands

import (
	"context"
	"time"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/domain/model/offer"
	"freightflow/internal/core/domain/model/progress"
	"freightflow/internal/core/domain/model/shipment"
	"freightflow/internal/pkg/errs"
)

// RespondToOfferCommandHandler resolves a pending offer with the shipper's
// verdict. Acceptance confirms the shipment at the offered terms and opens
// its journey log; rejection sends the shipment back to REQUESTED so the
// broker can re-quote.
type RespondToOfferCommandHandler struct {
	uowFactory BookingUoWFactory
	clock      func() time.Time
}

// NewRespondToOfferCommandHandler creates a handler for offer responses.
func NewRespondToOfferCommandHandler(uowFactory BookingUoWFactory) RespondToOfferCommandHandler {
	return RespondToOfferCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the offer response command. All three aggregate writes
// happen in one transaction under the shipment row lock.
func (h *RespondToOfferCommandHandler) Handle(ctx context.Context, cmd RespondToOfferCommand) error {
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

	current, err := uow.OfferRepository().Get(ctx, cmd.OfferID())
	if err != nil {
		return err
	}

	aggregate, err := uow.ShipmentRepository().GetForUpdate(ctx, current.ShipmentID())
	if err != nil {
		return err
	}

	// Re-read behind the lock; the offer could have resolved while we waited.
	current, err = uow.OfferRepository().Get(ctx, cmd.OfferID())
	if err != nil {
		return err
	}

	if !cmd.Actor().Owns(aggregate.ShipperID()) {
		return errs.NewForbiddenError(cmd.Actor().SubjectID().String(), "shipment "+aggregate.ID().String())
	}

	if cmd.Accept() {
		err = h.accept(ctx, cmd, uow, current, aggregate)
	} else {
		err = h.reject(ctx, uow, current, aggregate)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *RespondToOfferCommandHandler) accept(
	ctx context.Context,
	cmd RespondToOfferCommand,
	uow BookingUoW,
	current *offer.Offer,
	aggregate *shipment.Shipment,
) error {
	if err := current.Accept(); err != nil {
		return err
	}

	if err := aggregate.Confirm(current.Price(), current.PickupDate(), current.DeliveryDate()); err != nil {
		return err
	}

	journey, err := progress.NewProgress(cmd.ProgressID(), aggregate.ID(), progress.Entry{
		Title:       "Booking confirmed",
		Description: "Offer accepted at the agreed terms",
		At:          h.clock(),
	})
	if err != nil {
		return err
	}

	intent, err := notification.NewAdminBroadcast(notification.TemplateOfferAccepted, map[string]any{
		"shipmentId": aggregate.ID().String(),
		"offerId":    current.ID().String(),
		"price":      current.Price(),
	})
	if err != nil {
		return err
	}

	if err = uow.OfferRepository().Update(ctx, current); err != nil {
		return err
	}
	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.ProgressRepository().Add(ctx, journey); err != nil {
		return err
	}
	return uow.OutboxRepository().Enqueue(ctx, intent)
}

func (h *RespondToOfferCommandHandler) reject(
	ctx context.Context,
	uow BookingUoW,
	current *offer.Offer,
	aggregate *shipment.Shipment,
) error {
	if err := current.Reject(); err != nil {
		return err
	}

	if err := aggregate.ReopenAfterOfferRejection(); err != nil {
		return err
	}

	intent, err := notification.NewAdminBroadcast(notification.TemplateOfferRejected, map[string]any{
		"shipmentId": aggregate.ID().String(),
		"offerId":    current.ID().String(),
	})
	if err != nil {
		return err
	}

	if err = uow.OfferRepository().Update(ctx, current); err != nil {
		return err
	}
	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	return uow.OutboxRepository().Enqueue(ctx, intent)
}
