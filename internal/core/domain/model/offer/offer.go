// Package offer contains the Offer aggregate: the broker's price and schedule
// proposal for a shipment, awaiting the shipper's response. A shipment holds
// at most one active offer; a rejected offer is superseded by re-issuing a
// fresh one.
package offer

import (
	"errors"
	"fmt"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// ErrOfferIsNotConstructed is returned when an Offer instance was not created
// through NewOffer or RestoreOffer.
var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")

// Offer is the price/schedule proposal tied to exactly one shipment.
//
// Invariants:
//   - price is positive, delivery date does not precede pickup date
//   - terms may only change while status is PENDING
//   - once ACCEPTED or REJECTED the offer is immutable
type Offer struct {
	id           kernel.UUID
	shipmentID   kernel.UUID
	shipperID    kernel.UUID
	price        float64
	pickupDate   time.Time
	deliveryDate time.Time
	status       Status

	isConstructed bool
}

// NewOffer creates a PENDING offer for the given shipment.
func NewOffer(
	id, shipmentID, shipperID kernel.UUID,
	price float64,
	pickupDate, deliveryDate time.Time,
) (*Offer, error) {
	o := &Offer{
		id:            id,
		shipmentID:    shipmentID,
		shipperID:     shipperID,
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		shipperID.Validate(),
		validateTerms(price, pickupDate, deliveryDate),
	); err != nil {
		return nil, err
	}

	o.price = price
	o.pickupDate = pickupDate
	o.deliveryDate = deliveryDate
	return o, nil
}

// RestoreOffer reconstructs an offer from persistence.
func RestoreOffer(
	id, shipmentID, shipperID kernel.UUID,
	price float64,
	pickupDate, deliveryDate time.Time,
	status Status,
) (*Offer, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		shipperID.Validate(),
		validateTerms(price, pickupDate, deliveryDate),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Offer{
		id:            id,
		shipmentID:    shipmentID,
		shipperID:     shipperID,
		price:         price,
		pickupDate:    pickupDate,
		deliveryDate:  deliveryDate,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the offer was built through a constructor.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// ID returns the offer identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// ShipmentID returns the parent shipment.
func (o *Offer) ShipmentID() kernel.UUID {
	return o.shipmentID
}

// ShipperID returns the shipper the offer is addressed to.
func (o *Offer) ShipperID() kernel.UUID {
	return o.shipperID
}

// Price returns the proposed price.
func (o *Offer) Price() float64 {
	return o.price
}

// PickupDate returns the proposed pickup date.
func (o *Offer) PickupDate() time.Time {
	return o.pickupDate
}

// DeliveryDate returns the proposed delivery date.
func (o *Offer) DeliveryDate() time.Time {
	return o.deliveryDate
}

// Status returns the offer status.
func (o *Offer) Status() Status {
	return o.status
}

// UpdateTerms overwrites price and dates. Legal only while PENDING; the
// broker's "update offer" action is modeled as re-issuing the same pending
// offer with new terms.
func (o *Offer) UpdateTerms(price float64, pickupDate, deliveryDate time.Time) error {
	if o.status != StatusPending {
		return errs.NewInvalidStateError("offer", o.status.String(), "update terms")
	}
	if err := validateTerms(price, pickupDate, deliveryDate); err != nil {
		return err
	}

	o.price = price
	o.pickupDate = pickupDate
	o.deliveryDate = deliveryDate
	return nil
}

// Accept resolves the offer in the shipper's favor.
func (o *Offer) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Reject declines the offer; the broker may issue a fresh one afterwards.
func (o *Offer) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func validateTerms(price float64, pickupDate, deliveryDate time.Time) error {
	var errsList []error
	if price <= 0 {
		errsList = append(errsList, errs.NewValueIsInvalidErrorWithCause("offerPrice",
			fmt.Errorf("%v is not greater than 0", price)))
	}
	if pickupDate.IsZero() {
		errsList = append(errsList, errs.NewValueIsRequiredError("expectedPickupDate"))
	}
	if deliveryDate.IsZero() {
		errsList = append(errsList, errs.NewValueIsRequiredError("expectedDeliveryDate"))
	}
	if !pickupDate.IsZero() && !deliveryDate.IsZero() && deliveryDate.Before(pickupDate) {
		errsList = append(errsList, errs.NewValueIsInvalidErrorWithCause("expectedDeliveryDate",
			fmt.Errorf("delivery %s precedes pickup %s", deliveryDate, pickupDate)))
	}
	return errors.Join(errsList...)
}
