package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/payment"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand represents the broker raising a payment demand
// against a confirmed shipment.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	paymentID  kernel.UUID
	shipmentID kernel.UUID
	kind       payment.Kind
	amount     float64
	toAccount  string

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to raise a payment demand.
// Amount and account are validated again by the payment aggregate.
func NewCreatePaymentCommand(
	act actor.Actor,
	paymentID, shipmentID kernel.UUID,
	kind payment.Kind,
	amount float64,
	toAccount string,
) (CreatePaymentCommand, error) {
	cmd := CreatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setPaymentID(paymentID),
		cmd.setShipmentID(shipmentID),
		cmd.setKind(kind),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	cmd.amount = amount
	cmd.toAccount = toAccount
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c CreatePaymentCommand) Actor() actor.Actor {
	return c.actor
}

// PaymentID returns the identifier for the new payment.
func (c CreatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// ShipmentID returns the shipment the payment belongs to.
func (c CreatePaymentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Kind returns whether this is the advance or the final payment.
func (c CreatePaymentCommand) Kind() payment.Kind {
	return c.kind
}

// Amount returns the demanded amount.
func (c CreatePaymentCommand) Amount() float64 {
	return c.amount
}

// ToAccount returns the account descriptor the shipper should pay into.
func (c CreatePaymentCommand) ToAccount() string {
	return c.toAccount
}

func (c *CreatePaymentCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsAdmin() {
		return errs.NewForbiddenError(act.Role().String(), "payment creation")
	}

	c.actor = act
	return nil
}

func (c *CreatePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *CreatePaymentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreatePaymentCommand) setKind(kind payment.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
