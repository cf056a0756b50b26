package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/payment"
	"freightflow/internal/pkg/errs"
)

func inVerificationPayment(t *testing.T, shipperID kernel.UUID) *payment.Payment {
	t.Helper()
	demand, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), shipperID,
		payment.KindAdvance, 25000, "HDFC-00412-FREIGHT")
	require.NoError(t, err)
	require.NoError(t, demand.AttachProof("docs/proof-7741.pdf"))
	return demand
}

func TestVerifyPaymentCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	demand := inVerificationPayment(t, kernel.NewUUID())
	cmd, err := commands.NewVerifyPaymentCommand(adminActor(t), demand.ID(), true)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	payments := new(MockPaymentRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(payments).Times(3)
	uow.On("ShipmentRepository").Return(shipments).Once()
	uow.On("OutboxRepository").Return(outbox).Once()
	payments.On("Get", mock.Anything, demand.ID()).Return(demand, nil).Times(2)
	shipments.On("GetForUpdate", mock.Anything, demand.ShipmentID()).Return(
		requestedShipment(t, demand.ShipperID()), nil).Once()
	payments.On("Update", mock.Anything, demand).Return(nil).Once()
	outbox.On("Enqueue", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyPaymentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, payment.StatusCompleted, demand.Status())
	payments.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestVerifyPaymentCommandHandler_Handle_WithoutProof(t *testing.T) {
	ctx := t.Context()
	demand, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		payment.KindFinal, 50000, "HDFC-00412-FREIGHT")
	require.NoError(t, err)

	cmd, err := commands.NewVerifyPaymentCommand(adminActor(t), demand.ID(), true)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	payments := new(MockPaymentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(payments).Times(2)
	uow.On("ShipmentRepository").Return(shipments).Once()
	payments.On("Get", mock.Anything, demand.ID()).Return(demand, nil).Times(2)
	shipments.On("GetForUpdate", mock.Anything, demand.ShipmentID()).Return(
		requestedShipment(t, demand.ShipperID()), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, payment.StatusPending, demand.Status())
}
