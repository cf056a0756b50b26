package commands

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrUpdateOfferCommandIsNotConstructed = errors.New(
	"UpdateOfferCommand must be created via NewUpdateOfferCommand constructor",
)

// UpdateOfferCommand overwrites the terms of a still-pending offer. The
// shipment stays in OFFER_SENT.
type UpdateOfferCommand struct { //nolint:recvcheck //using for validation
	actor        actor.Actor
	offerID      kernel.UUID
	price        float64
	pickupDate   time.Time
	deliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOfferCommand creates a command to revise a pending offer's terms.
func NewUpdateOfferCommand(
	act actor.Actor,
	offerID kernel.UUID,
	price float64,
	pickupDate, deliveryDate time.Time,
) (UpdateOfferCommand, error) {
	cmd := UpdateOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setOfferID(offerID),
	); err != nil {
		return UpdateOfferCommand{}, err
	}

	cmd.price = price
	cmd.pickupDate = pickupDate
	cmd.deliveryDate = deliveryDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOfferCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOfferCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c UpdateOfferCommand) Actor() actor.Actor {
	return c.actor
}

// OfferID returns the offer to revise.
func (c UpdateOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// Price returns the revised price.
func (c UpdateOfferCommand) Price() float64 {
	return c.price
}

// PickupDate returns the revised pickup date.
func (c UpdateOfferCommand) PickupDate() time.Time {
	return c.pickupDate
}

// DeliveryDate returns the revised delivery date.
func (c UpdateOfferCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

func (c *UpdateOfferCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsAdmin() {
		return errs.NewForbiddenError(act.Role().String(), "offer revision")
	}

	c.actor = act
	return nil
}

func (c *UpdateOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	return nil
}
