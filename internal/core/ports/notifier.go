package ports

import "context"

// Notifier is the delivery sink for notification intents. Implementations
// publish the message to whatever actually reaches people; the relay job is
// the only caller.
type Notifier interface {
	// Publish delivers one outbox message. A non-nil error leaves the
	// message unsent so the relay retries it on the next tick.
	Publish(ctx context.Context, message OutboxMessage) error
}
