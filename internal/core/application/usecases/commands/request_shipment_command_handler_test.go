package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/kernel"
)

func TestRequestShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestShipmentCommand(
		shipperActor(t, kernel.NewUUID()), kernel.NewUUID(), validDetails(), "EWB-4471")
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("Enqueue", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	shipments.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRequestShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockShipmentUoWFactory)
	h := commands.NewRequestShipmentCommandHandler(factory)

	err := h.Handle(ctx, commands.RequestShipmentCommand{})
	require.Error(t, err)
}

func TestRequestShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestShipmentCommand(
		shipperActor(t, kernel.NewUUID()), kernel.NewUUID(), validDetails(), "")
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestShipmentCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	shipments.AssertExpectations(t)
	uow.AssertExpectations(t)
}
