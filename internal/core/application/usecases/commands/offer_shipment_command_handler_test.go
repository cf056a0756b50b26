package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/offer"
	"freightflow/internal/core/domain/model/shipment"
	"freightflow/internal/pkg/errs"
)

func offerTerms() (float64, time.Time, time.Time) {
	return 42000,
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
}

func TestOfferShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := requestedShipment(t, kernel.NewUUID())
	price, pickup, delivery := offerTerms()
	cmd, err := commands.NewOfferShipmentCommand(
		adminActor(t), kernel.NewUUID(), aggregate.ID(), price, pickup, delivery)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	offers := new(MockOfferRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Times(2)
	uow.On("OfferRepository").Return(offers).Times(2)
	uow.On("OutboxRepository").Return(outbox).Once()
	shipments.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	offers.On("GetPendingByShipment", mock.Anything, aggregate.ID()).
		Return(nil, errs.NewObjectNotFoundError("shipmentID", aggregate.ID())).Once()
	offers.On("Add", mock.Anything, mock.AnythingOfType("*offer.Offer")).Return(nil).Once()
	shipments.On("Update", mock.Anything, aggregate).Return(nil).Once()
	outbox.On("Enqueue", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOfferShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, shipment.StatusOfferSent, aggregate.Status())
	shipments.AssertExpectations(t)
	offers.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestOfferShipmentCommandHandler_Handle_PendingOfferBlocks(t *testing.T) {
	ctx := t.Context()
	aggregate := requestedShipment(t, kernel.NewUUID())
	price, pickup, delivery := offerTerms()
	cmd, err := commands.NewOfferShipmentCommand(
		adminActor(t), kernel.NewUUID(), aggregate.ID(), price, pickup, delivery)
	require.NoError(t, err)

	pending, err := offer.NewOffer(kernel.NewUUID(), aggregate.ID(), aggregate.ShipperID(),
		price, pickup, delivery)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	offers := new(MockOfferRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Once()
	uow.On("OfferRepository").Return(offers).Once()
	shipments.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	offers.On("GetPendingByShipment", mock.Anything, aggregate.ID()).Return(pending, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOfferShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, shipment.StatusRequested, aggregate.Status())
}

func TestOfferShipmentCommandHandler_Handle_ConfirmedShipmentBlocks(t *testing.T) {
	ctx := t.Context()
	aggregate := requestedShipment(t, kernel.NewUUID())
	price, pickup, delivery := offerTerms()
	require.NoError(t, aggregate.MarkOfferSent())
	require.NoError(t, aggregate.Confirm(price, pickup, delivery))

	cmd, err := commands.NewOfferShipmentCommand(
		adminActor(t), kernel.NewUUID(), aggregate.ID(), price, pickup, delivery)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	offers := new(MockOfferRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Once()
	uow.On("OfferRepository").Return(offers).Once()
	shipments.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	offers.On("GetPendingByShipment", mock.Anything, aggregate.ID()).
		Return(nil, errs.NewObjectNotFoundError("shipmentID", aggregate.ID())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOfferShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
