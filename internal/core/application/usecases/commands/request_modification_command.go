package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/shipment"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrRequestModificationCommandIsNotConstructed = errors.New(
	"RequestModificationCommand must be created via NewRequestModificationCommand constructor",
)

// RequestModificationCommand represents a shipper's proposal to change the
// details of a still-negotiating shipment.
type RequestModificationCommand struct { //nolint:recvcheck //using for validation
	actor        actor.Actor
	requestID    kernel.UUID
	shipmentID   kernel.UUID
	proposed     shipment.Details
	changeReason string

	guard guard.ConstructorGuard
}

// NewRequestModificationCommand creates a command to propose changed
// shipment details. The diff against the current details is computed by the
// handler, inside the shipment lock.
func NewRequestModificationCommand(
	act actor.Actor,
	requestID, shipmentID kernel.UUID,
	proposed shipment.Details,
	changeReason string,
) (RequestModificationCommand, error) {
	cmd := RequestModificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setRequestID(requestID),
		cmd.setShipmentID(shipmentID),
		cmd.setProposed(proposed),
	); err != nil {
		return RequestModificationCommand{}, err
	}

	cmd.changeReason = changeReason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestModificationCommand) Validate() error {
	return c.guard.Validate(ErrRequestModificationCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c RequestModificationCommand) Actor() actor.Actor {
	return c.actor
}

// RequestID returns the identifier for the new modification request.
func (c RequestModificationCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ShipmentID returns the shipment whose details should change.
func (c RequestModificationCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Proposed returns the proposed replacement details.
func (c RequestModificationCommand) Proposed() shipment.Details {
	return c.proposed
}

// ChangeReason returns the shipper's free-text motivation.
func (c RequestModificationCommand) ChangeReason() string {
	return c.changeReason
}

func (c *RequestModificationCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsShipper() {
		return errs.NewForbiddenError(act.Role().String(), "modification request")
	}

	c.actor = act
	return nil
}

func (c *RequestModificationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *RequestModificationCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RequestModificationCommand) setProposed(proposed shipment.Details) error {
	if err := proposed.Validate(); err != nil {
		return err
	}

	c.proposed = proposed
	return nil
}
