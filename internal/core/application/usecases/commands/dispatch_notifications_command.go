package commands

import (
	"errors"

	"freightflow/internal/pkg/guard"
)

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

// DispatchNotificationsCommand triggers one relay pass over the notification
// outbox. Parameterless; the relay job issues it on every tick.
type DispatchNotificationsCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a new relay trigger command.
func NewDispatchNotificationsCommand() DispatchNotificationsCommand {
	return DispatchNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchNotificationsCommandIsNotConstructed,
	)
}
