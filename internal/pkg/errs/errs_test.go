package errs_test

import (
	"errors"
	"testing"

	"freightflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentId", "123")

		assert.Equal(t, "shipmentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("offerId", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: offerId, ID is: 42 (cause: record not found)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("sanitizes newlines in the ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("paymentId", "abc\ndef")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("pickupState")
		assert.Equal(t, "value is required: pickupState", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid with cause", func(t *testing.T) {
		cause := errors.New("must be positive")
		err := errs.NewValueIsInvalidErrorWithCause("weightKg", cause)
		assert.Equal(t, "value is invalid: weightKg (cause: must be positive)", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("shipper", "shipment 7")

	assert.Equal(t, "shipper", err.Subject)
	assert.Equal(t, "operation is forbidden: shipper may not act on shipment 7", err.Error())
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestInvalidStateError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewInvalidStateError("shipment", "CONFIRMED", "request modification")

		assert.Equal(t,
			"invalid state for operation: shipment in status CONFIRMED does not allow request modification",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("offer already resolved")
		err := errs.NewInvalidStateErrorWithCause("offer", "ACCEPTED", "respond", cause)
		assert.Contains(t, err.Error(), "(cause: offer already resolved)")
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestStoreUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewStoreUnavailableError("begin tx", cause)

	assert.Equal(t, "store unavailable: begin tx (cause: connection refused)", err.Error())
	assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
}
