package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/progress"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents the broker assigning a driver and vehicle
// to a confirmed shipment.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	shipmentID kernel.UUID
	driver     progress.Driver

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver and vehicle.
func NewAssignDriverCommand(
	act actor.Actor,
	shipmentID kernel.UUID,
	driver progress.Driver,
) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setShipmentID(shipmentID),
		cmd.setDriver(driver),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c AssignDriverCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the shipment getting the driver.
func (c AssignDriverCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Driver returns the driver and vehicle descriptor.
func (c AssignDriverCommand) Driver() progress.Driver {
	return c.driver
}

func (c *AssignDriverCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsAdmin() {
		return errs.NewForbiddenError(act.Role().String(), "driver assignment")
	}

	c.actor = act
	return nil
}

func (c *AssignDriverCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AssignDriverCommand) setDriver(driver progress.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}

	c.driver = driver
	return nil
}
