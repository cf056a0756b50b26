package queries

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var ErrGetOffersQueryIsNotConstructed = errors.New(
	"GetOffersQuery must be created via NewGetOffersQuery constructor",
)

// GetOffersQuery retrieves offers visible to the caller. Shippers see the
// offers made on their own shipments, admins see all of them.
type GetOffersQuery struct {
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOffersQuery creates a query scoped to the given actor.
func NewGetOffersQuery(act actor.Actor) (GetOffersQuery, error) {
	if err := act.Validate(); err != nil {
		return GetOffersQuery{}, err
	}

	return GetOffersQuery{
		actor: act,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetOffersQueryIsNotConstructed)
}

// Actor returns the caller the result set is scoped to.
func (q GetOffersQuery) Actor() actor.Actor {
	return q.actor
}

// GetOffersQueryResponse is one offer row with its shipment reference.
type GetOffersQueryResponse struct {
	ID           kernel.UUID
	ShipmentID   kernel.UUID
	ShipperID    kernel.UUID
	Price        float64
	PickupDate   time.Time
	DeliveryDate time.Time
	Status       string
	CreatedAt    time.Time
}
