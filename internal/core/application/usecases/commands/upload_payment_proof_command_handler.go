package commands

import (
	"context"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/pkg/errs"
)

// UploadPaymentProofCommandHandler attaches a transfer proof to a pending
// payment and moves it into verification.
type UploadPaymentProofCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewUploadPaymentProofCommandHandler creates a handler for proof uploads.
func NewUploadPaymentProofCommandHandler(uowFactory PaymentUoWFactory) UploadPaymentProofCommandHandler {
	return UploadPaymentProofCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the proof upload command.
func (h *UploadPaymentProofCommandHandler) Handle(ctx context.Context, cmd UploadPaymentProofCommand) error {
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

	if !cmd.Actor().Owns(demand.ShipperID()) {
		return errs.NewForbiddenError(cmd.Actor().SubjectID().String(), "payment "+demand.ID().String())
	}

	if err = demand.AttachProof(cmd.ProofRef()); err != nil {
		return err
	}

	intent, err := notification.NewAdminBroadcast(notification.TemplatePaymentProofUploaded, map[string]any{
		"shipmentId": demand.ShipmentID().String(),
		"paymentId":  demand.ID().String(),
		"proofRef":   demand.ProofRef(),
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
