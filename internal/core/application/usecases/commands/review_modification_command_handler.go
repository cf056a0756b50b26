package commands

import (
	"context"
	"errors"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/domain/model/offer"
	"freightflow/internal/core/domain/services"
	"freightflow/internal/pkg/errs"
)

// ReviewModificationCommandHandler resolves a pending modification request.
// Acceptance applies the proposed details to the shipment; either verdict
// releases the shipment from MODIFICATION_REQUESTED into whatever status the
// current offer implies.
type ReviewModificationCommandHandler struct {
	uowFactory ReviewUoWFactory
	deriver    services.StatusDeriver
}

// NewReviewModificationCommandHandler creates a handler for modification
// review.
func NewReviewModificationCommandHandler(uowFactory ReviewUoWFactory) ReviewModificationCommandHandler {
	return ReviewModificationCommandHandler{
		uowFactory: uowFactory,
		deriver:    services.NewStatusDeriver(),
	}
}

// Handle processes the review command.
func (h *ReviewModificationCommandHandler) Handle(ctx context.Context, cmd ReviewModificationCommand) error {
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

	request, err := uow.ModificationRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	aggregate, err := uow.ShipmentRepository().GetForUpdate(ctx, request.ShipmentID())
	if err != nil {
		return err
	}

	// Re-read behind the lock; a concurrent review could have resolved it.
	request, err = uow.ModificationRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if cmd.Accept() {
		if err = request.Accept(); err != nil {
			return err
		}
		if err = aggregate.ApplyModification(request.Proposed()); err != nil {
			return err
		}
	} else {
		if err = request.Reject(); err != nil {
			return err
		}
	}

	latest, err := uow.OfferRepository().GetLatestByShipment(ctx, aggregate.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	var current *offer.Offer
	if err == nil {
		current = latest
	}

	if err = aggregate.ApplyDerivedStatus(h.deriver.Derive(current)); err != nil {
		return err
	}

	intent, err := notification.NewShipperIntent(aggregate.ShipperID(), notification.TemplateModificationReviewed, map[string]any{
		"shipmentId": aggregate.ID().String(),
		"requestId":  request.ID().String(),
		"accepted":   cmd.Accept(),
	})
	if err != nil {
		return err
	}

	if err = uow.ModificationRepository().Update(ctx, request); err != nil {
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
