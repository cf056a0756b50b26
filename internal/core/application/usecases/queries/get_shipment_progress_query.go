package queries

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var ErrGetShipmentProgressQueryIsNotConstructed = errors.New(
	"GetShipmentProgressQuery must be created via NewGetShipmentProgressQuery constructor",
)

// GetShipmentProgressQuery retrieves the journey log of one shipment.
// Shippers may only read the log of their own shipments.
type GetShipmentProgressQuery struct {
	actor      actor.Actor
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentProgressQuery creates a query for one shipment's journey log.
func NewGetShipmentProgressQuery(act actor.Actor, shipmentID kernel.UUID) (GetShipmentProgressQuery, error) {
	if err := errors.Join(act.Validate(), shipmentID.Validate()); err != nil {
		return GetShipmentProgressQuery{}, err
	}

	return GetShipmentProgressQuery{
		actor:      act,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentProgressQueryIsNotConstructed)
}

// Actor returns the caller the result is scoped to.
func (q GetShipmentProgressQuery) Actor() actor.Actor {
	return q.actor
}

// ShipmentID returns the shipment whose log is requested.
func (q GetShipmentProgressQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ProgressDriverResponse is the assigned driver and vehicle descriptor.
type ProgressDriverResponse struct {
	DriverName    string
	DriverMobile  string
	VehicleNumber string
	ChassisNumber string
}

// ProgressEntryResponse is one journey log event.
type ProgressEntryResponse struct {
	Title       string
	Description string
	At          time.Time
	PdfRef      string
	ImageRef    string
}

// GetShipmentProgressQueryResponse is the shipment's journey log. Driver is
// nil until the broker assigns one.
type GetShipmentProgressQueryResponse struct {
	ShipmentID kernel.UUID
	Driver     *ProgressDriverResponse
	Entries    []ProgressEntryResponse
}
