package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrReviewModificationCommandIsNotConstructed = errors.New(
	"ReviewModificationCommand must be created via NewReviewModificationCommand constructor",
)

// ReviewModificationCommand represents the broker's verdict on a pending
// modification request.
type ReviewModificationCommand struct { //nolint:recvcheck //using for validation
	actor     actor.Actor
	requestID kernel.UUID
	accept    bool

	guard guard.ConstructorGuard
}

// NewReviewModificationCommand creates a command carrying the broker's
// verdict on a modification request.
func NewReviewModificationCommand(
	act actor.Actor,
	requestID kernel.UUID,
	accept bool,
) (ReviewModificationCommand, error) {
	cmd := ReviewModificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setRequestID(requestID),
	); err != nil {
		return ReviewModificationCommand{}, err
	}

	cmd.accept = accept
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewModificationCommand) Validate() error {
	return c.guard.Validate(ErrReviewModificationCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c ReviewModificationCommand) Actor() actor.Actor {
	return c.actor
}

// RequestID returns the modification request under review.
func (c ReviewModificationCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Accept reports whether the broker accepted the proposed changes.
func (c ReviewModificationCommand) Accept() bool {
	return c.accept
}

func (c *ReviewModificationCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsAdmin() {
		return errs.NewForbiddenError(act.Role().String(), "modification review")
	}

	c.actor = act
	return nil
}

func (c *ReviewModificationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
