// Package queries contains read operations over the booking store. Queries
// bypass the aggregates and read the tables directly, returning flat response
// structures shaped for the HTTP layer.
package queries

import (
	"errors"
	"time"

	"freightflow/internal/adapters/out/postgres/shipmentrepo"
	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var ErrGetShipmentsQueryIsNotConstructed = errors.New(
	"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
)

// GetShipmentsQuery retrieves shipments visible to the caller. Shippers see
// their own shipments, admins see all of them.
type GetShipmentsQuery struct {
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a query scoped to the given actor.
func NewGetShipmentsQuery(act actor.Actor) (GetShipmentsQuery, error) {
	if err := act.Validate(); err != nil {
		return GetShipmentsQuery{}, err
	}

	return GetShipmentsQuery{
		actor: act,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// Actor returns the caller the result set is scoped to.
func (q GetShipmentsQuery) Actor() actor.Actor {
	return q.actor
}

// GetShipmentsQueryResponse is one shipment row with its decoded booking
// details.
type GetShipmentsQueryResponse struct {
	ID          kernel.UUID
	ShipperID   kernel.UUID
	Status      string
	EwayBillRef string
	Cost        *float64
	Details     shipmentrepo.DetailsDoc
	CreatedAt   time.Time
}
