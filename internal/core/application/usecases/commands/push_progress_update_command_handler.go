package commands

import (
	"context"
	"time"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/domain/model/progress"
)

// PushProgressUpdateCommandHandler appends a journey event to a shipment's
// log.
type PushProgressUpdateCommandHandler struct {
	uowFactory ProgressUoWFactory
	clock      func() time.Time
}

// NewPushProgressUpdateCommandHandler creates a handler for journey updates.
func NewPushProgressUpdateCommandHandler(uowFactory ProgressUoWFactory) PushProgressUpdateCommandHandler {
	return PushProgressUpdateCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the journey update command.
func (h *PushProgressUpdateCommandHandler) Handle(ctx context.Context, cmd PushProgressUpdateCommand) error {
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

	aggregate, err := uow.ShipmentRepository().GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	journey, err := uow.ProgressRepository().GetByShipment(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	err = journey.Append(progress.Entry{
		Title:       cmd.Title(),
		Description: cmd.Description(),
		At:          h.clock(),
		PdfRef:      cmd.PdfRef(),
		ImageRef:    cmd.ImageRef(),
	})
	if err != nil {
		return err
	}

	intent, err := notification.NewShipperIntent(aggregate.ShipperID(), notification.TemplateProgressUpdated, map[string]any{
		"shipmentId": aggregate.ID().String(),
		"title":      cmd.Title(),
	})
	if err != nil {
		return err
	}

	if err = uow.ProgressRepository().Update(ctx, journey); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Enqueue(ctx, intent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
