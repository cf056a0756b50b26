package commands

import (
	"context"
	"errors"

	"freightflow/internal/core/domain/model/modification"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/pkg/errs"
)

// RequestModificationCommandHandler records a shipper's change proposal and
// freezes negotiation until the broker reviews it. Only one proposal may be
// pending per shipment; the shipment row lock makes two concurrent requests
// serialize so exactly one wins.
type RequestModificationCommandHandler struct {
	uowFactory ModificationUoWFactory
}

// NewRequestModificationCommandHandler creates a handler for modification
// requests.
func NewRequestModificationCommandHandler(uowFactory ModificationUoWFactory) RequestModificationCommandHandler {
	return RequestModificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the modification request command.
func (h *RequestModificationCommandHandler) Handle(ctx context.Context, cmd RequestModificationCommand) error {
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

	if !cmd.Actor().Owns(aggregate.ShipperID()) {
		return errs.NewForbiddenError(cmd.Actor().SubjectID().String(), "shipment "+aggregate.ID().String())
	}

	_, err = uow.ModificationRepository().GetPendingByShipment(ctx, cmd.ShipmentID())
	if err == nil {
		return errs.NewInvalidStateError("shipment", aggregate.Status().String(), "request second modification")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	request, err := modification.NewModification(
		cmd.RequestID(), aggregate.ID(), aggregate.ShipperID(),
		aggregate.Details(), cmd.Proposed(), cmd.ChangeReason())
	if err != nil {
		return err
	}

	if err = aggregate.MarkModificationRequested(); err != nil {
		return err
	}

	intent, err := notification.NewAdminBroadcast(notification.TemplateModificationRequested, map[string]any{
		"shipmentId": aggregate.ID().String(),
		"requestId":  request.ID().String(),
		"reason":     request.ChangeReason(),
		"changes":    request.Changes(),
	})
	if err != nil {
		return err
	}

	if err = uow.ModificationRepository().Add(ctx, request); err != nil {
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
