package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/offer"
	"freightflow/internal/core/domain/model/shipment"
	"freightflow/internal/core/domain/services"
)

func newOffer(t *testing.T) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		42000,
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestStatusDeriver_Derive(t *testing.T) {
	deriver := services.NewStatusDeriver()

	t.Run("no offer means requested", func(t *testing.T) {
		assert.Equal(t, shipment.StatusRequested, deriver.Derive(nil))
	})

	t.Run("pending offer means offer sent", func(t *testing.T) {
		assert.Equal(t, shipment.StatusOfferSent, deriver.Derive(newOffer(t)))
	})

	t.Run("accepted offer means confirmed", func(t *testing.T) {
		o := newOffer(t)
		require.NoError(t, o.Accept())

		assert.Equal(t, shipment.StatusConfirmed, deriver.Derive(o))
	})

	t.Run("rejected offer means requested", func(t *testing.T) {
		o := newOffer(t)
		require.NoError(t, o.Reject())

		assert.Equal(t, shipment.StatusRequested, deriver.Derive(o))
	})
}
