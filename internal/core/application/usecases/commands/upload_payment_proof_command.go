package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrUploadPaymentProofCommandIsNotConstructed = errors.New(
	"UploadPaymentProofCommand must be created via NewUploadPaymentProofCommand constructor",
)

// UploadPaymentProofCommand represents the shipper attaching a transfer
// proof to a pending payment.
type UploadPaymentProofCommand struct { //nolint:recvcheck //using for validation
	actor     actor.Actor
	paymentID kernel.UUID
	proofRef  string

	guard guard.ConstructorGuard
}

// NewUploadPaymentProofCommand creates a command to attach a transfer proof.
func NewUploadPaymentProofCommand(
	act actor.Actor,
	paymentID kernel.UUID,
	proofRef string,
) (UploadPaymentProofCommand, error) {
	cmd := UploadPaymentProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setPaymentID(paymentID),
		cmd.setProofRef(proofRef),
	); err != nil {
		return UploadPaymentProofCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadPaymentProofCommand) Validate() error {
	return c.guard.Validate(ErrUploadPaymentProofCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c UploadPaymentProofCommand) Actor() actor.Actor {
	return c.actor
}

// PaymentID returns the payment the proof belongs to.
func (c UploadPaymentProofCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// ProofRef returns the opaque reference to the stored proof document.
func (c UploadPaymentProofCommand) ProofRef() string {
	return c.proofRef
}

func (c *UploadPaymentProofCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsShipper() {
		return errs.NewForbiddenError(act.Role().String(), "proof upload")
	}

	c.actor = act
	return nil
}

func (c *UploadPaymentProofCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *UploadPaymentProofCommand) setProofRef(proofRef string) error {
	if proofRef == "" {
		return errs.NewValueIsRequiredError("proofRef")
	}

	c.proofRef = proofRef
	return nil
}
