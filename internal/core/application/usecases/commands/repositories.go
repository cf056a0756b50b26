// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
//
// Every command that decides something about a shipment loads that shipment
// with ShipmentRepository.GetForUpdate inside its unit of work, so commands
// touching the same shipment serialize on its row lock.
package commands

import (
	"context"

	"freightflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest composite that covers the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within
	// a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// OfferRepoFactory provides access to the offer repository within a
	// transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// ModificationRepoFactory provides access to the modification repository
	// within a transaction.
	ModificationRepoFactory interface {
		ModificationRepository() ports.ModificationRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a
	// transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ProgressRepoFactory provides access to the journey log repository
	// within a transaction.
	ProgressRepoFactory interface {
		ProgressRepository() ports.ProgressRepository
	}

	// OutboxFactory provides access to the notification outbox within a
	// transaction. Almost every command writes outbox rows alongside its
	// state delta.
	OutboxFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// ShipmentUoW manages transactions for commands that only touch the
	// shipment and its outbox rows.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		OutboxFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// OfferUoW manages transactions for offer issuance and updates.
	OfferUoW interface {
		TxManager
		ShipmentRepoFactory
		OfferRepoFactory
		OutboxFactory
	}

	// OfferUoWFactory creates new offer unit of work instances.
	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// BookingUoW manages transactions for the shipper's offer response,
	// which crosses the shipment, offer and journey log aggregates.
	BookingUoW interface {
		TxManager
		ShipmentRepoFactory
		OfferRepoFactory
		ProgressRepoFactory
		OutboxFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// ModificationUoW manages transactions for modification requests.
	ModificationUoW interface {
		TxManager
		ShipmentRepoFactory
		ModificationRepoFactory
		OutboxFactory
	}

	// ModificationUoWFactory creates new modification unit of work instances.
	ModificationUoWFactory interface {
		Create() ModificationUoW
	}

	// ReviewUoW manages transactions for modification review, which reads
	// the current offer to re-derive the shipment status.
	ReviewUoW interface {
		TxManager
		ShipmentRepoFactory
		ModificationRepoFactory
		OfferRepoFactory
		OutboxFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// PaymentUoW manages transactions for the payment lifecycle.
	PaymentUoW interface {
		TxManager
		ShipmentRepoFactory
		PaymentRepoFactory
		OutboxFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// ProgressUoW manages transactions for journey log commands.
	ProgressUoW interface {
		TxManager
		ShipmentRepoFactory
		ProgressRepoFactory
		OutboxFactory
	}

	// ProgressUoWFactory creates new progress unit of work instances.
	ProgressUoWFactory interface {
		Create() ProgressUoW
	}

	// OutboxUoW manages transactions for the notification relay.
	OutboxUoW interface {
		TxManager
		OutboxFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
