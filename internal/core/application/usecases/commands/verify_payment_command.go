package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrVerifyPaymentCommandIsNotConstructed = errors.New(
	"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
)

// VerifyPaymentCommand represents the broker's verdict on an uploaded
// transfer proof.
type VerifyPaymentCommand struct { //nolint:recvcheck //using for validation
	actor     actor.Actor
	paymentID kernel.UUID
	approved  bool

	guard guard.ConstructorGuard
}

// NewVerifyPaymentCommand creates a command carrying the broker's verdict on
// a payment proof.
func NewVerifyPaymentCommand(
	act actor.Actor,
	paymentID kernel.UUID,
	approved bool,
) (VerifyPaymentCommand, error) {
	cmd := VerifyPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setPaymentID(paymentID),
	); err != nil {
		return VerifyPaymentCommand{}, err
	}

	cmd.approved = approved
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c VerifyPaymentCommand) Actor() actor.Actor {
	return c.actor
}

// PaymentID returns the payment under verification.
func (c VerifyPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Approved reports whether the proof was accepted.
func (c VerifyPaymentCommand) Approved() bool {
	return c.approved
}

func (c *VerifyPaymentCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsAdmin() {
		return errs.NewForbiddenError(act.Role().String(), "payment verification")
	}

	c.actor = act
	return nil
}

func (c *VerifyPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}
