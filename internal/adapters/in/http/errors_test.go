package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/domain/model/modification"
	"freightflow/internal/pkg/errs"
)

func TestWriteError_StatusMapping(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"NotFound", errs.NewObjectNotFoundError("shipment", "abc"), http.StatusNotFound},
		{"Forbidden", errs.NewForbiddenError("subject", "shipment"), http.StatusForbidden},
		{"InvalidState", errs.NewInvalidStateError("shipment", "COMPLETED", "reject"), http.StatusConflict},
		{"NoChanges", modification.ErrNoChanges, http.StatusUnprocessableEntity},
		{"Required", errs.NewValueIsRequiredError("title"), http.StatusBadRequest},
		{"Invalid", errs.NewValueIsInvalidError("shipmentId"), http.StatusBadRequest},
		{"StoreUnavailable", errs.NewStoreUnavailableError("get shipment", assert.AnError), http.StatusServiceUnavailable},
		{"Unknown", assert.AnError, http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			require.NoError(t, writeError(ctx, tc.err))
			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}
