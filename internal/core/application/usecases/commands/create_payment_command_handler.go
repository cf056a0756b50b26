package commands

import (
	"context"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/domain/model/payment"
)

// CreatePaymentCommandHandler raises a payment demand on a shipment.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCreatePaymentCommandHandler creates a handler for payment creation.
func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment creation command.
func (h *CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) error {
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

	demand, err := payment.NewPayment(
		cmd.PaymentID(), aggregate.ID(), aggregate.ShipperID(),
		cmd.Kind(), cmd.Amount(), cmd.ToAccount())
	if err != nil {
		return err
	}

	intent, err := notification.NewShipperIntent(aggregate.ShipperID(), notification.TemplatePaymentRequested, map[string]any{
		"shipmentId":  aggregate.ID().String(),
		"paymentId":   demand.ID().String(),
		"paymentType": demand.Kind().String(),
		"amount":      demand.Amount(),
	})
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, demand); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Enqueue(ctx, intent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
