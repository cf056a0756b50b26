package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrRejectShipmentCommandIsNotConstructed = errors.New(
	"RejectShipmentCommand must be created via NewRejectShipmentCommand constructor",
)

// RejectShipmentCommand represents the broker declining a shipment request
// outright. The record is kept for audit; REJECTED is terminal.
type RejectShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectShipmentCommand creates a command to decline a shipment request.
func NewRejectShipmentCommand(act actor.Actor, shipmentID kernel.UUID) (RejectShipmentCommand, error) {
	cmd := RejectShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return RejectShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRejectShipmentCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c RejectShipmentCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the shipment to decline.
func (c RejectShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *RejectShipmentCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsAdmin() {
		return errs.NewForbiddenError(act.Role().String(), "shipment rejection")
	}

	c.actor = act
	return nil
}

func (c *RejectShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
