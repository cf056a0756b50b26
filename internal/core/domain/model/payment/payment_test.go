package payment_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/payment"
	"freightflow/internal/pkg/errs"
)

func newPayment(t *testing.T, kind payment.Kind) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kind, 25000, "HDFC-00412-FREIGHT")
	require.NoError(t, err)
	return p
}

func TestKindFromString(t *testing.T) {
	t.Run("known kinds", func(t *testing.T) {
		k, err := payment.KindFromString("ADVANCE")
		require.NoError(t, err)
		assert.Equal(t, payment.KindAdvance, k)

		k, err = payment.KindFromString("FINAL")
		require.NoError(t, err)
		assert.Equal(t, payment.KindFinal, k)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := payment.KindFromString("PARTIAL")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewPayment(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		p := newPayment(t, payment.KindAdvance)
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, payment.KindAdvance, p.Kind())
		assert.Empty(t, p.ProofRef())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			payment.KindFinal, 0, "HDFC-00412-FREIGHT")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty account", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			payment.KindFinal, 25000, "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPayment_AttachProof(t *testing.T) {
	t.Run("moves pending payment into verification", func(t *testing.T) {
		p := newPayment(t, payment.KindAdvance)

		err := p.AttachProof("docs/proof-7741.pdf")

		require.NoError(t, err)
		assert.Equal(t, payment.StatusInVerification, p.Status())
		assert.Equal(t, "docs/proof-7741.pdf", p.ProofRef())
	})

	t.Run("requires a proof reference", func(t *testing.T) {
		p := newPayment(t, payment.KindAdvance)
		assert.ErrorIs(t, p.AttachProof(""), errs.ErrValueIsRequired)
	})

	t.Run("rejects a second upload", func(t *testing.T) {
		p := newPayment(t, payment.KindAdvance)
		require.NoError(t, p.AttachProof("docs/proof-7741.pdf"))

		err := p.AttachProof("docs/proof-7742.pdf")

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "docs/proof-7741.pdf", p.ProofRef())
	})
}

func TestPayment_Verify(t *testing.T) {
	t.Run("approval completes the payment", func(t *testing.T) {
		p := newPayment(t, payment.KindFinal)
		require.NoError(t, p.AttachProof("docs/proof-7741.pdf"))

		require.NoError(t, p.Verify(true))

		assert.Equal(t, payment.StatusCompleted, p.Status())
		assert.True(t, p.Status().IsTerminal())
	})

	t.Run("rejection fails the payment", func(t *testing.T) {
		p := newPayment(t, payment.KindFinal)
		require.NoError(t, p.AttachProof("docs/proof-7741.pdf"))

		require.NoError(t, p.Verify(false))

		assert.Equal(t, payment.StatusFailed, p.Status())
	})

	t.Run("cannot verify without proof", func(t *testing.T) {
		p := newPayment(t, payment.KindFinal)

		err := p.Verify(true)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		var stateErr *errs.InvalidStateError
		require.True(t, errors.As(err, &stateErr))
		assert.Equal(t, "PENDING", stateErr.Current)
	})

	t.Run("cannot verify twice", func(t *testing.T) {
		p := newPayment(t, payment.KindFinal)
		require.NoError(t, p.AttachProof("docs/proof-7741.pdf"))
		require.NoError(t, p.Verify(true))

		assert.ErrorIs(t, p.Verify(false), errs.ErrInvalidState)
	})
}
