package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/modification"
	"freightflow/internal/core/domain/model/shipment"
	"freightflow/internal/pkg/errs"
)

func TestRequestModificationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	aggregate := requestedShipment(t, shipperID)

	proposed := validDetails()
	proposed.Cargo.WeightKg = 21000
	cmd, err := commands.NewRequestModificationCommand(
		shipperActor(t, shipperID), kernel.NewUUID(), aggregate.ID(), proposed, "weight revised after packing")
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	mods := new(MockModificationRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Times(2)
	uow.On("ModificationRepository").Return(mods).Times(2)
	uow.On("OutboxRepository").Return(outbox).Once()
	shipments.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	mods.On("GetPendingByShipment", mock.Anything, aggregate.ID()).
		Return(nil, errs.NewObjectNotFoundError("shipmentID", aggregate.ID())).Once()
	mods.On("Add", mock.Anything, mock.AnythingOfType("*modification.Modification")).Return(nil).Once()
	shipments.On("Update", mock.Anything, aggregate).Return(nil).Once()
	outbox.On("Enqueue", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockModificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestModificationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, shipment.StatusModificationRequested, aggregate.Status())
	mods.AssertExpectations(t)
	shipments.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRequestModificationCommandHandler_Handle_NoChanges(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	aggregate := requestedShipment(t, shipperID)

	cmd, err := commands.NewRequestModificationCommand(
		shipperActor(t, shipperID), kernel.NewUUID(), aggregate.ID(), validDetails(), "")
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	mods := new(MockModificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Once()
	uow.On("ModificationRepository").Return(mods).Once()
	shipments.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	mods.On("GetPendingByShipment", mock.Anything, aggregate.ID()).
		Return(nil, errs.NewObjectNotFoundError("shipmentID", aggregate.ID())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockModificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestModificationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, modification.ErrNoChanges)
	assert.Equal(t, shipment.StatusRequested, aggregate.Status())
}

func TestRequestModificationCommandHandler_Handle_SecondPendingBlocked(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	aggregate := requestedShipment(t, shipperID)
	require.NoError(t, aggregate.MarkModificationRequested())

	proposed := validDetails()
	proposed.Cargo.WeightKg = 21000
	existing, err := modification.NewModification(
		kernel.NewUUID(), aggregate.ID(), shipperID, validDetails(), proposed, "first request")
	require.NoError(t, err)

	proposed.Cargo.WeightKg = 23000
	cmd, err := commands.NewRequestModificationCommand(
		shipperActor(t, shipperID), kernel.NewUUID(), aggregate.ID(), proposed, "second request")
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	mods := new(MockModificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Once()
	uow.On("ModificationRepository").Return(mods).Once()
	shipments.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	mods.On("GetPendingByShipment", mock.Anything, aggregate.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockModificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestModificationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestRequestModificationCommandHandler_Handle_ForeignShipper(t *testing.T) {
	ctx := t.Context()
	aggregate := requestedShipment(t, kernel.NewUUID())

	proposed := validDetails()
	proposed.Cargo.WeightKg = 21000
	cmd, err := commands.NewRequestModificationCommand(
		shipperActor(t, kernel.NewUUID()), kernel.NewUUID(), aggregate.ID(), proposed, "")
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Once()
	shipments.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockModificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestModificationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}
