package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrRespondToOfferCommandIsNotConstructed = errors.New(
	"RespondToOfferCommand must be created via NewRespondToOfferCommand constructor",
)

// RespondToOfferCommand represents the shipper's verdict on a pending offer.
// Accepting confirms the booking; rejecting reopens the request.
type RespondToOfferCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	offerID    kernel.UUID
	progressID kernel.UUID
	accept     bool

	guard guard.ConstructorGuard
}

// NewRespondToOfferCommand creates a command carrying the shipper's verdict.
// The progress identifier names the journey log created on acceptance; it is
// ignored on rejection.
func NewRespondToOfferCommand(
	act actor.Actor,
	offerID, progressID kernel.UUID,
	accept bool,
) (RespondToOfferCommand, error) {
	cmd := RespondToOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setOfferID(offerID),
		cmd.setProgressID(progressID),
	); err != nil {
		return RespondToOfferCommand{}, err
	}

	cmd.accept = accept
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondToOfferCommand) Validate() error {
	return c.guard.Validate(ErrRespondToOfferCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c RespondToOfferCommand) Actor() actor.Actor {
	return c.actor
}

// OfferID returns the offer being answered.
func (c RespondToOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// ProgressID returns the identifier for the journey log created on accept.
func (c RespondToOfferCommand) ProgressID() kernel.UUID {
	return c.progressID
}

// Accept reports whether the shipper accepted the offer.
func (c RespondToOfferCommand) Accept() bool {
	return c.accept
}

func (c *RespondToOfferCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsShipper() {
		return errs.NewForbiddenError(act.Role().String(), "offer response")
	}

	c.actor = act
	return nil
}

func (c *RespondToOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	return nil
}

func (c *RespondToOfferCommand) setProgressID(progressID kernel.UUID) error {
	if err := progressID.Validate(); err != nil {
		return err
	}

	c.progressID = progressID
	return nil
}
