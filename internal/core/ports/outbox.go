package ports

import (
	"context"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
)

// OutboxMessage is a persisted notification intent awaiting delivery. Rows
// are written in the same transaction as the state change that produced them
// and drained later by the relay job, so a sink outage never loses or
// un-commits anything.
type OutboxMessage struct {
	ID        kernel.UUID
	Audience  notification.Audience
	ShipperID kernel.UUID
	Template  string
	Payload   map[string]any
	CreatedAt time.Time
	SentAt    *time.Time
}

// OutboxRepository defines the persistence contract for the notification
// outbox.
type OutboxRepository interface {
	// Enqueue persists intents as unsent outbox rows inside the current
	// transaction.
	Enqueue(ctx context.Context, intents ...notification.Intent) error

	// CollectUnsent retrieves up to limit unsent messages in creation order.
	CollectUnsent(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkSent stamps the messages as delivered.
	MarkSent(ctx context.Context, ids ...kernel.UUID) error
}
