package offer_test

import (
	"testing"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/offer"
	"freightflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPickup   = time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)
	testDelivery = time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
)

func newPendingOffer(t *testing.T) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		5000, testPickup, testDelivery)
	require.NoError(t, err)
	return o
}

func TestNewOffer(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		o := newPendingOffer(t)

		assert.Equal(t, offer.StatusPending, o.Status())
		assert.Equal(t, float64(5000), o.Price())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			0, testPickup, testDelivery)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects delivery before pickup", func(t *testing.T) {
		_, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			5000, testDelivery, testPickup)
		require.Error(t, err)
	})
}

func TestOffer_UpdateTerms(t *testing.T) {
	t.Run("pending offer terms can change", func(t *testing.T) {
		o := newPendingOffer(t)

		newDelivery := testDelivery.Add(48 * time.Hour)
		require.NoError(t, o.UpdateTerms(6200, testPickup, newDelivery))

		assert.Equal(t, float64(6200), o.Price())
		assert.Equal(t, newDelivery, o.DeliveryDate())
		assert.Equal(t, offer.StatusPending, o.Status())
	})

	t.Run("resolved offer is immutable", func(t *testing.T) {
		o := newPendingOffer(t)
		require.NoError(t, o.Accept())

		err := o.UpdateTerms(6200, testPickup, testDelivery)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, float64(5000), o.Price())
	})
}

func TestOffer_Resolution(t *testing.T) {
	t.Run("accept", func(t *testing.T) {
		o := newPendingOffer(t)
		require.NoError(t, o.Accept())
		assert.Equal(t, offer.StatusAccepted, o.Status())
	})

	t.Run("reject", func(t *testing.T) {
		o := newPendingOffer(t)
		require.NoError(t, o.Reject())
		assert.Equal(t, offer.StatusRejected, o.Status())
	})

	t.Run("accepting twice fails", func(t *testing.T) {
		o := newPendingOffer(t)
		require.NoError(t, o.Accept())

		err := o.Accept()
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejecting an accepted offer fails", func(t *testing.T) {
		o := newPendingOffer(t)
		require.NoError(t, o.Accept())
		assert.ErrorIs(t, o.Reject(), errs.ErrInvalidState)
	})
}

func TestStatus_IsResolved(t *testing.T) {
	assert.False(t, offer.StatusPending.IsResolved())
	assert.True(t, offer.StatusAccepted.IsResolved())
	assert.True(t, offer.StatusRejected.IsResolved())
}
