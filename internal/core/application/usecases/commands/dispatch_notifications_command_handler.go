package commands

import (
	"context"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/ports"
)

// dispatchBatchSize bounds one relay pass so a backlog drains in chunks.
const dispatchBatchSize = 100

// DispatchNotificationsCommandHandler drains unsent outbox rows through the
// notification sink. A message that fails to publish stays unsent and is
// retried on the next pass; messages already delivered in this pass are
// still marked sent.
type DispatchNotificationsCommandHandler struct {
	uowFactory OutboxUoWFactory
	notifier   ports.Notifier
}

// NewDispatchNotificationsCommandHandler creates a handler for the
// notification relay.
func NewDispatchNotificationsCommandHandler(
	uowFactory OutboxUoWFactory,
	notifier ports.Notifier,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes one relay pass.
func (h DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	messages, err := uow.OutboxRepository().CollectUnsent(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	var delivered []kernel.UUID
	var publishErr error
	for _, message := range messages {
		if publishErr = h.notifier.Publish(ctx, message); publishErr != nil {
			break
		}
		delivered = append(delivered, message.ID)
	}

	if len(delivered) > 0 {
		if err = uow.OutboxRepository().MarkSent(ctx, delivered...); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}
	}

	return publishErr
}
