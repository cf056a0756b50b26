package ports

import (
	"context"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/progress"
)

// ProgressRepository defines the persistence contract for shipment journey
// logs.
type ProgressRepository interface {
	// Add persists a new journey log to storage.
	Add(ctx context.Context, aggregate *progress.Progress) error

	// Update persists changes to an existing journey log.
	Update(ctx context.Context, aggregate *progress.Progress) error

	// GetByShipment retrieves the journey log of the given shipment.
	// Returns errs.ErrObjectNotFound when the shipment was never confirmed.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*progress.Progress, error)
}
