package shipment

import (
	"errors"
	"fmt"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is the aggregate root for one freight movement. It owns its active
// offer, pending modification, payments, and progress log by reference; those
// records never outlive it or move to another shipment.
//
// Invariants:
//   - id and shipperID are valid UUIDs
//   - details satisfy the booking-form rules (Details.Validate)
//   - status only changes along the transition table in status.go
//   - cost is set exactly once, when an offer is accepted
type Shipment struct {
	id          kernel.UUID
	shipperID   kernel.UUID
	details     Details
	ewayBillRef string
	status      Status
	cost        *float64

	isConstructed bool
}

// NewShipment creates a shipment in REQUESTED status. The eway-bill reference
// is an opaque pointer to an uploaded document and may be empty.
func NewShipment(id, shipperID kernel.UUID, details Details, ewayBillRef string) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		shipperID.Validate(),
		details.Validate(),
	); err != nil {
		return nil, err
	}

	return &Shipment{
		id:            id,
		shipperID:     shipperID,
		details:       details,
		ewayBillRef:   ewayBillRef,
		status:        StatusRequested,
		isConstructed: true,
	}, nil
}

// RestoreShipment reconstructs a shipment from persistence without re-running
// the creation transition.
func RestoreShipment(
	id, shipperID kernel.UUID,
	details Details,
	ewayBillRef string,
	status Status,
	cost *float64,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		shipperID.Validate(),
		details.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Shipment{
		id:            id,
		shipperID:     shipperID,
		details:       details,
		ewayBillRef:   ewayBillRef,
		status:        status,
		cost:          cost,
		isConstructed: true,
	}, nil
}

// Validate ensures the shipment was built through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// ShipperID returns the owning shipper.
func (s *Shipment) ShipperID() kernel.UUID {
	return s.shipperID
}

// Details returns the current booking details.
func (s *Shipment) Details() Details {
	return s.details
}

// EwayBillRef returns the opaque document reference, empty when none was
// uploaded.
func (s *Shipment) EwayBillRef() string {
	return s.ewayBillRef
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Cost returns the agreed price, nil until an offer is accepted.
func (s *Shipment) Cost() *float64 {
	return s.cost
}

// MarkOfferSent records that a pending offer now exists for this shipment.
func (s *Shipment) MarkOfferSent() error {
	return s.transition(StatusOfferSent)
}

// MarkModificationRequested suspends offer actions while a modification is
// pending review.
func (s *Shipment) MarkModificationRequested() error {
	return s.transition(StatusModificationRequested)
}

// Confirm applies an accepted offer: the price becomes the shipment cost, the
// offered dates replace the expected schedule, and the status moves to
// CONFIRMED. Legal only from OFFER_SENT, which makes double-acceptance
// impossible.
func (s *Shipment) Confirm(price float64, pickupDate, deliveryDate time.Time) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	// The transition table also reaches CONFIRMED from
	// MODIFICATION_REQUESTED, but that path belongs to ApplyDerivedStatus.
	if s.status != StatusOfferSent {
		return errs.NewInvalidStateError("shipment", s.status.String(), "accept offer")
	}
	if err := s.transition(StatusConfirmed); err != nil {
		return err
	}

	s.cost = &price
	s.details.Schedule = Schedule{PickupDate: pickupDate, DeliveryDate: deliveryDate}
	return nil
}

// ReopenAfterOfferRejection returns the shipment to REQUESTED so the broker
// may issue a fresh offer. Legal only from OFFER_SENT; while a modification
// is pending review the offer cannot be resolved.
func (s *Shipment) ReopenAfterOfferRejection() error {
	if s.status != StatusOfferSent {
		return errs.NewInvalidStateError("shipment", s.status.String(), "reject offer")
	}
	return s.transition(StatusRequested)
}

// ApplyModification overwrites the booking details with an accepted
// modification proposal. The caller re-derives the status separately.
func (s *Shipment) ApplyModification(details Details) error {
	if !s.status.NegotiationOpen() {
		return errs.NewInvalidStateError("shipment", s.status.String(), "apply modification")
	}
	if err := details.Validate(); err != nil {
		return err
	}

	s.details = details
	return nil
}

// ApplyDerivedStatus sets the status computed from the current offer state
// after a modification was resolved. Legal only from MODIFICATION_REQUESTED;
// the transition table bounds the reachable targets.
func (s *Shipment) ApplyDerivedStatus(derived Status) error {
	if s.status != StatusModificationRequested {
		return errs.NewInvalidStateError("shipment", s.status.String(), "re-derive status")
	}
	return s.transition(derived)
}

// StartTransit moves a confirmed shipment into execution.
func (s *Shipment) StartTransit() error {
	return s.transition(StatusInTransit)
}

// CompleteDelivery marks the shipment delivered. Terminal.
func (s *Shipment) CompleteDelivery() error {
	return s.transition(StatusCompleted)
}

// Reject declines the request before any offer went out. Terminal; the record
// is retained for audit.
func (s *Shipment) Reject() error {
	return s.transition(StatusRejected)
}

func (s *Shipment) transition(next Status) error {
	newStatus, err := s.status.TransitionTo(next)
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}
