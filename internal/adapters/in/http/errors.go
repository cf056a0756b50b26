package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"freightflow/internal/core/domain/model/modification"
	"freightflow/internal/pkg/errs"
)

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes. Validation failures
// are client errors; illegal transitions are conflicts because the resource
// state moved underneath the caller.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, modification.ErrNoChanges):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}
