// Package jobs provides the scheduled background tasks of the booking
// service, built on github.com/robfig/cron/v3.
package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"freightflow/internal/core/application/usecases/commands"
)

// NotificationRelayJob drains the notification outbox on a fixed schedule.
// Delivery errors are logged and retried on the next tick; anything the sink
// accepted stays marked sent.
type NotificationRelayJob struct {
	handler commands.DispatchNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRelayJob creates the relay job. The handler owns the batch
// size and the partial-failure semantics; the job only provides the cadence.
func NewNotificationRelayJob(
	handler commands.DispatchNotificationsCommandHandler,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_relay_job"),
	}
}

// Start begins draining the outbox every five seconds.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchNotificationsCommand()

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Notification relay failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every five seconds)")
	return nil
}

// Stop stops the relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
