package modification_test

import (
	"testing"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/modification"
	"freightflow/internal/core/domain/model/shipment"
	"freightflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseDetails() shipment.Details {
	return shipment.Details{
		Route: shipment.Route{
			Pickup: shipment.Address{Line1: "12 Industrial Estate", State: "Maharashtra", Pincode: "400001"},
			Drop:   shipment.Address{Line1: "5 Ring Road", State: "Delhi", Pincode: "110001"},
		},
		Schedule: shipment.Schedule{
			PickupDate:   time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
			DeliveryDate: time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC),
		},
		Cargo: shipment.Cargo{
			MaterialType: "Steel", WeightKg: 100, MaterialValue: 50000,
		},
		Logistics: shipment.Logistics{
			ShipmentType: shipment.ShipmentTypeFullTruckLoad, BodyType: "Open",
		},
	}
}

func TestNewModification(t *testing.T) {
	t.Run("records the diff and starts pending", func(t *testing.T) {
		proposed := baseDetails()
		proposed.Cargo.WeightKg = 150

		m, err := modification.NewModification(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			baseDetails(), proposed, "heavier load than planned")
		require.NoError(t, err)

		assert.Equal(t, modification.StatusPending, m.Status())
		assert.False(t, m.Resolved())
		assert.Equal(t, "heavier load than planned", m.ChangeReason())

		changes := m.Changes()
		require.Len(t, changes, 1)
		assert.Equal(t, shipment.FieldChange{Old: float64(100), New: float64(150)}, changes["weightKg"])
	})

	t.Run("empty diff is rejected", func(t *testing.T) {
		_, err := modification.NewModification(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			baseDetails(), baseDetails(), "")
		assert.ErrorIs(t, err, modification.ErrNoChanges)
	})

	t.Run("invalid proposal is rejected", func(t *testing.T) {
		proposed := baseDetails()
		proposed.Cargo.WeightKg = -5

		_, err := modification.NewModification(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			baseDetails(), proposed, "")
		require.Error(t, err)
	})
}

func TestModification_Resolution(t *testing.T) {
	newPending := func(t *testing.T) *modification.Modification {
		t.Helper()
		proposed := baseDetails()
		proposed.Cargo.WeightKg = 150
		m, err := modification.NewModification(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			baseDetails(), proposed, "")
		require.NoError(t, err)
		return m
	}

	t.Run("accept marks resolved", func(t *testing.T) {
		m := newPending(t)
		require.NoError(t, m.Accept())

		assert.Equal(t, modification.StatusAccepted, m.Status())
		assert.True(t, m.Resolved())
	})

	t.Run("reject marks resolved", func(t *testing.T) {
		m := newPending(t)
		require.NoError(t, m.Reject())

		assert.Equal(t, modification.StatusRejected, m.Status())
		assert.True(t, m.Resolved())
	})

	t.Run("resolved modification is immutable", func(t *testing.T) {
		m := newPending(t)
		require.NoError(t, m.Accept())

		assert.ErrorIs(t, m.Reject(), errs.ErrInvalidState)
		assert.ErrorIs(t, m.Accept(), errs.ErrInvalidState)
	})
}

func TestModification_ChangesCopy(t *testing.T) {
	proposed := baseDetails()
	proposed.Cargo.WeightKg = 150
	m, err := modification.NewModification(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		baseDetails(), proposed, "")
	require.NoError(t, err)

	// Mutating the returned map must not affect the aggregate.
	m.Changes()["weightKg"] = shipment.FieldChange{Old: 1, New: 2}
	assert.Equal(t, shipment.FieldChange{Old: float64(100), New: float64(150)}, m.Changes()["weightKg"])
}
