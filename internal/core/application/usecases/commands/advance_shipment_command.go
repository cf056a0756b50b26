package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrAdvanceShipmentCommandIsNotConstructed = errors.New(
	"AdvanceShipmentCommand must be created via NewAdvanceShipmentCommand constructor",
)

// AdvanceShipmentCommand moves a booked shipment one step along its
// execution path: CONFIRMED to IN_TRANSIT, then IN_TRANSIT to COMPLETED.
type AdvanceShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceShipmentCommand creates a command to advance shipment execution.
func NewAdvanceShipmentCommand(act actor.Actor, shipmentID kernel.UUID) (AdvanceShipmentCommand, error) {
	cmd := AdvanceShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return AdvanceShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c AdvanceShipmentCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the shipment to advance.
func (c AdvanceShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *AdvanceShipmentCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsAdmin() {
		return errs.NewForbiddenError(act.Role().String(), "shipment execution")
	}

	c.actor = act
	return nil
}

func (c *AdvanceShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
