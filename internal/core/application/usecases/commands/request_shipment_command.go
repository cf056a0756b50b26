package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/shipment"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrRequestShipmentCommandIsNotConstructed = errors.New(
	"RequestShipmentCommand must be created via NewRequestShipmentCommand constructor",
)

// RequestShipmentCommand represents a shipper's request to move freight.
// Carries the full shipment details plus an optional e-way bill reference.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewRequestShipmentCommand(act, shipmentID, details, "EWB-4471")
//	if err != nil {
//	    return fmt.Errorf("invalid shipment request: %w", err)
//	}
//
//	handler := NewRequestShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to request shipment: %w", err)
//	}
type RequestShipmentCommand struct { //nolint:recvcheck //using for validation
	actor       actor.Actor
	shipmentID  kernel.UUID
	details     shipment.Details
	ewayBillRef string

	guard guard.ConstructorGuard
}

// NewRequestShipmentCommand creates a command to register a new shipment
// request. Validates the actor, the shipment identifier and the details.
func NewRequestShipmentCommand(
	act actor.Actor,
	shipmentID kernel.UUID,
	details shipment.Details,
	ewayBillRef string,
) (RequestShipmentCommand, error) {
	cmd := RequestShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setShipmentID(shipmentID),
		cmd.setDetails(details),
	); err != nil {
		return RequestShipmentCommand{}, err
	}

	cmd.ewayBillRef = ewayBillRef
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRequestShipmentCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c RequestShipmentCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the identifier for the new shipment.
func (c RequestShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Details returns the requested shipment details.
func (c RequestShipmentCommand) Details() shipment.Details {
	return c.details
}

// EwayBillRef returns the optional e-way bill document reference.
func (c RequestShipmentCommand) EwayBillRef() string {
	return c.ewayBillRef
}

func (c *RequestShipmentCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsShipper() {
		return errs.NewForbiddenError(act.Role().String(), "shipment request")
	}

	c.actor = act
	return nil
}

func (c *RequestShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RequestShipmentCommand) setDetails(details shipment.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
