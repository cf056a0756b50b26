package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command. Each command gets
// its own transaction scope; concurrent commands never share one.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a single command. Client code
// manages the lifecycle explicitly: Begin, do work through the repositories,
// Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Safe to defer after a
	// successful Commit.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction.
	ShipmentRepository() ShipmentRepository

	// OfferRepository returns an OfferRepository bound to the current
	// transaction.
	OfferRepository() OfferRepository

	// ModificationRepository returns a ModificationRepository bound to the
	// current transaction.
	ModificationRepository() ModificationRepository

	// PaymentRepository returns a PaymentRepository bound to the current
	// transaction.
	PaymentRepository() PaymentRepository

	// ProgressRepository returns a ProgressRepository bound to the current
	// transaction.
	ProgressRepository() ProgressRepository

	// OutboxRepository returns an OutboxRepository bound to the current
	// transaction.
	OutboxRepository() OutboxRepository
}
