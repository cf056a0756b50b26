package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/modification"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/domain/model/offer"
	"freightflow/internal/core/domain/model/payment"
	"freightflow/internal/core/domain/model/progress"
	"freightflow/internal/core/domain/model/shipment"
	"freightflow/internal/core/ports"
)

// Hand mocks shared by the handler tests in this package. MockUoW satisfies
// every narrow unit of work composite; the factory mocks pin handlers to
// their composite type.

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, a *shipment.Shipment) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, a *shipment.Shipment) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, a *offer.Offer) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockOfferRepository) Update(ctx context.Context, a *offer.Offer) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}
func (m *MockOfferRepository) GetPendingByShipment(ctx context.Context, shipmentID kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}
func (m *MockOfferRepository) GetLatestByShipment(ctx context.Context, shipmentID kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

type MockModificationRepository struct{ mock.Mock }

func (m *MockModificationRepository) Add(ctx context.Context, a *modification.Modification) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockModificationRepository) Update(ctx context.Context, a *modification.Modification) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockModificationRepository) Get(ctx context.Context, id kernel.UUID) (*modification.Modification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*modification.Modification), args.Error(1)
}
func (m *MockModificationRepository) GetPendingByShipment(ctx context.Context, shipmentID kernel.UUID) (*modification.Modification, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*modification.Modification), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, a *payment.Payment) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockPaymentRepository) Update(ctx context.Context, a *payment.Payment) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockProgressRepository struct{ mock.Mock }

func (m *MockProgressRepository) Add(ctx context.Context, a *progress.Progress) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockProgressRepository) Update(ctx context.Context, a *progress.Progress) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockProgressRepository) GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*progress.Progress, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progress.Progress), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Enqueue(ctx context.Context, intents ...notification.Intent) error {
	return m.Called(ctx, intents).Error(0)
}
func (m *MockOutboxRepository) CollectUnsent(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}
func (m *MockOutboxRepository) MarkSent(ctx context.Context, ids ...kernel.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Publish(ctx context.Context, message ports.OutboxMessage) error {
	return m.Called(ctx, message).Error(0)
}

// MockUoW satisfies every unit of work composite used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) OfferRepository() ports.OfferRepository {
	return m.Called().Get(0).(ports.OfferRepository)
}
func (m *MockUoW) ModificationRepository() ports.ModificationRepository {
	return m.Called().Get(0).(ports.ModificationRepository)
}
func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}
func (m *MockUoW) ProgressRepository() ports.ProgressRepository {
	return m.Called().Get(0).(ports.ProgressRepository)
}
func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	return m.Called().Get(0).(commands.ShipmentUoW)
}

type MockOfferUoWFactory struct{ mock.Mock }

func (m *MockOfferUoWFactory) Create() commands.OfferUoW {
	return m.Called().Get(0).(commands.OfferUoW)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	return m.Called().Get(0).(commands.BookingUoW)
}

type MockModificationUoWFactory struct{ mock.Mock }

func (m *MockModificationUoWFactory) Create() commands.ModificationUoW {
	return m.Called().Get(0).(commands.ModificationUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	return m.Called().Get(0).(commands.ReviewUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	return m.Called().Get(0).(commands.PaymentUoW)
}

type MockProgressUoWFactory struct{ mock.Mock }

func (m *MockProgressUoWFactory) Create() commands.ProgressUoW {
	return m.Called().Get(0).(commands.ProgressUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}

// Test fixtures.

func shipperActor(t *testing.T, id kernel.UUID) actor.Actor {
	t.Helper()
	act, err := actor.NewActor(actor.RoleShipper, id)
	require.NoError(t, err)
	return act
}

func adminActor(t *testing.T) actor.Actor {
	t.Helper()
	act, err := actor.NewActor(actor.RoleAdmin, kernel.NewUUID())
	require.NoError(t, err)
	return act
}

func validDetails() shipment.Details {
	return shipment.Details{
		Route: shipment.Route{
			Pickup: shipment.Address{Line1: "14 Industrial Estate", State: "Karnataka", Pincode: "560058"},
			Drop:   shipment.Address{Line1: "Plot 9, MIDC", State: "Maharashtra", Pincode: "411019"},
		},
		Schedule: shipment.Schedule{
			PickupDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			DeliveryDate: time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		},
		Cargo: shipment.Cargo{
			MaterialType:  "Steel coils",
			WeightKg:      18000,
			MaterialValue: 2500000,
		},
		Logistics: shipment.Logistics{
			TransportMode: "road",
			ShipmentType:  shipment.ShipmentTypeFullTruckLoad,
			BodyType:      "Open",
			TruckSize:     "32ft",
		},
	}
}

func requestedShipment(t *testing.T, shipperID kernel.UUID) *shipment.Shipment {
	t.Helper()
	agg, err := shipment.NewShipment(kernel.NewUUID(), shipperID, validDetails(), "EWB-4471")
	require.NoError(t, err)
	return agg
}
