package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/ports"
)

func unsentMessages(n int) []ports.OutboxMessage {
	messages := make([]ports.OutboxMessage, 0, n)
	for range n {
		messages = append(messages, ports.OutboxMessage{
			ID:        kernel.NewUUID(),
			Audience:  notification.AudienceAdmins,
			Template:  notification.TemplateShipmentRequested,
			Payload:   map[string]any{"shipmentId": kernel.NewUUID().String()},
			CreatedAt: time.Now(),
		})
	}
	return messages
}

func TestDispatchNotificationsCommandHandler_Handle_DrainsBatch(t *testing.T) {
	ctx := t.Context()
	messages := unsentMessages(3)

	outbox := new(MockOutboxRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outbox).Times(2)
	outbox.On("CollectUnsent", mock.Anything, 100).Return(messages, nil).Once()
	for _, message := range messages {
		notifier.On("Publish", mock.Anything, message).Return(nil).Once()
	}
	outbox.On("MarkSent", mock.Anything,
		[]kernel.UUID{messages[0].ID, messages[1].ID, messages[2].ID}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchNotificationsCommandHandler(factory, notifier)
	cmd := commands.NewDispatchNotificationsCommand()
	require.NoError(t, h.Handle(ctx, cmd))
	outbox.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatchNotificationsCommandHandler_Handle_EmptyOutbox(t *testing.T) {
	ctx := t.Context()

	outbox := new(MockOutboxRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outbox).Once()
	outbox.On("CollectUnsent", mock.Anything, 100).Return([]ports.OutboxMessage{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchNotificationsCommandHandler(factory, notifier)
	cmd := commands.NewDispatchNotificationsCommand()
	require.NoError(t, h.Handle(ctx, cmd))
	notifier.AssertNotCalled(t, "Publish")
}

func TestDispatchNotificationsCommandHandler_Handle_SinkFailureKeepsRemainder(t *testing.T) {
	ctx := t.Context()
	messages := unsentMessages(3)

	outbox := new(MockOutboxRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outbox).Times(2)
	outbox.On("CollectUnsent", mock.Anything, 100).Return(messages, nil).Once()
	notifier.On("Publish", mock.Anything, messages[0]).Return(nil).Once()
	notifier.On("Publish", mock.Anything, messages[1]).Return(errors.New("broker unreachable")).Once()
	outbox.On("MarkSent", mock.Anything, []kernel.UUID{messages[0].ID}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchNotificationsCommandHandler(factory, notifier)
	cmd := commands.NewDispatchNotificationsCommand()
	err := h.Handle(ctx, cmd)

	assert.Error(t, err)
	notifier.AssertNotCalled(t, "Publish", mock.Anything, messages[2])
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
}
