package commands

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrOfferShipmentCommandIsNotConstructed = errors.New(
	"OfferShipmentCommand must be created via NewOfferShipmentCommand constructor",
)

// OfferShipmentCommand represents the broker's price offer on a shipment
// request. Only legal while the shipment is negotiating and no other offer
// is pending.
type OfferShipmentCommand struct { //nolint:recvcheck //using for validation
	actor        actor.Actor
	offerID      kernel.UUID
	shipmentID   kernel.UUID
	price        float64
	pickupDate   time.Time
	deliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewOfferShipmentCommand creates a command to issue a price offer.
// Terms are validated again by the offer aggregate; the command only checks
// identity and identifiers.
func NewOfferShipmentCommand(
	act actor.Actor,
	offerID, shipmentID kernel.UUID,
	price float64,
	pickupDate, deliveryDate time.Time,
) (OfferShipmentCommand, error) {
	cmd := OfferShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setOfferID(offerID),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return OfferShipmentCommand{}, err
	}

	cmd.price = price
	cmd.pickupDate = pickupDate
	cmd.deliveryDate = deliveryDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OfferShipmentCommand) Validate() error {
	return c.guard.Validate(ErrOfferShipmentCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c OfferShipmentCommand) Actor() actor.Actor {
	return c.actor
}

// OfferID returns the identifier for the new offer.
func (c OfferShipmentCommand) OfferID() kernel.UUID {
	return c.offerID
}

// ShipmentID returns the shipment the offer is for.
func (c OfferShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Price returns the offered price.
func (c OfferShipmentCommand) Price() float64 {
	return c.price
}

// PickupDate returns the proposed pickup date.
func (c OfferShipmentCommand) PickupDate() time.Time {
	return c.pickupDate
}

// DeliveryDate returns the proposed delivery date.
func (c OfferShipmentCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

func (c *OfferShipmentCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsAdmin() {
		return errs.NewForbiddenError(act.Role().String(), "offer issuance")
	}

	c.actor = act
	return nil
}

func (c *OfferShipmentCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	return nil
}

func (c *OfferShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
