package queries

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/shipment"
	"freightflow/internal/pkg/guard"
)

var ErrGetModificationsQueryIsNotConstructed = errors.New(
	"GetModificationsQuery must be created via NewGetModificationsQuery constructor",
)

// GetModificationsQuery retrieves modification requests visible to the
// caller. Shippers see their own, admins see all of them.
type GetModificationsQuery struct {
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetModificationsQuery creates a query scoped to the given actor.
func NewGetModificationsQuery(act actor.Actor) (GetModificationsQuery, error) {
	if err := act.Validate(); err != nil {
		return GetModificationsQuery{}, err
	}

	return GetModificationsQuery{
		actor: act,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetModificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetModificationsQueryIsNotConstructed)
}

// Actor returns the caller the result set is scoped to.
func (q GetModificationsQuery) Actor() actor.Actor {
	return q.actor
}

// GetModificationsQueryResponse is one modification request with its
// per-field diff, keyed by form field name.
type GetModificationsQueryResponse struct {
	ID           kernel.UUID
	ShipmentID   kernel.UUID
	ShipperID    kernel.UUID
	Changes      map[string]shipment.FieldChange
	ChangeReason string
	Status       string
	Resolved     bool
	CreatedAt    time.Time
}
