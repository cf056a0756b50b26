package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
	"freightflow/internal/pkg/guard"
)

var ErrPushProgressUpdateCommandIsNotConstructed = errors.New(
	"PushProgressUpdateCommand must be created via NewPushProgressUpdateCommand constructor",
)

// PushProgressUpdateCommand represents the broker appending a journey event
// to a shipment's log.
type PushProgressUpdateCommand struct { //nolint:recvcheck //using for validation
	actor       actor.Actor
	shipmentID  kernel.UUID
	title       string
	description string
	pdfRef      string
	imageRef    string

	guard guard.ConstructorGuard
}

// NewPushProgressUpdateCommand creates a command to append a journey event.
// Document references are optional.
func NewPushProgressUpdateCommand(
	act actor.Actor,
	shipmentID kernel.UUID,
	title, description, pdfRef, imageRef string,
) (PushProgressUpdateCommand, error) {
	cmd := PushProgressUpdateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setShipmentID(shipmentID),
		cmd.setTitle(title),
	); err != nil {
		return PushProgressUpdateCommand{}, err
	}

	cmd.description = description
	cmd.pdfRef = pdfRef
	cmd.imageRef = imageRef
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PushProgressUpdateCommand) Validate() error {
	return c.guard.Validate(ErrPushProgressUpdateCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c PushProgressUpdateCommand) Actor() actor.Actor {
	return c.actor
}

// ShipmentID returns the shipment whose log grows.
func (c PushProgressUpdateCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Title returns the event headline.
func (c PushProgressUpdateCommand) Title() string {
	return c.title
}

// Description returns the optional event body.
func (c PushProgressUpdateCommand) Description() string {
	return c.description
}

// PdfRef returns the optional reference to an attached document.
func (c PushProgressUpdateCommand) PdfRef() string {
	return c.pdfRef
}

// ImageRef returns the optional reference to an attached photo.
func (c PushProgressUpdateCommand) ImageRef() string {
	return c.imageRef
}

func (c *PushProgressUpdateCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if !act.IsAdmin() {
		return errs.NewForbiddenError(act.Role().String(), "progress update")
	}

	c.actor = act
	return nil
}

func (c *PushProgressUpdateCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *PushProgressUpdateCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}
