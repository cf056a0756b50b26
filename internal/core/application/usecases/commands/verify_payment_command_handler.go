package commands

import (
	"context"

	"freightflow/internal/core/domain/model/notification"
)

// VerifyPaymentCommandHandler resolves an in-verification payment as
// COMPLETED or FAILED.
type VerifyPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewVerifyPaymentCommandHandler creates a handler for payment verification.
func NewVerifyPaymentCommandHandler(uowFactory PaymentUoWFactory) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command.
func (h *VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) error {
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

	demand, err := uow.PaymentRepository().Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if _, err = uow.ShipmentRepository().GetForUpdate(ctx, demand.ShipmentID()); err != nil {
		return err
	}

	// Re-read behind the lock.
	demand, err = uow.PaymentRepository().Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = demand.Verify(cmd.Approved()); err != nil {
		return err
	}

	intent, err := notification.NewShipperIntent(demand.ShipperID(), notification.TemplatePaymentVerified, map[string]any{
		"shipmentId": demand.ShipmentID().String(),
		"paymentId":  demand.ID().String(),
		"status":     demand.Status().String(),
	})
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, demand); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Enqueue(ctx, intent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
