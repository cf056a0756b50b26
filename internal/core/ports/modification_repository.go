package ports

import (
	"context"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/modification"
)

// ModificationRepository defines the persistence contract for modification
// request aggregates.
type ModificationRepository interface {
	// Add persists a new modification request to storage.
	Add(ctx context.Context, aggregate *modification.Modification) error

	// Update persists changes to an existing modification request.
	Update(ctx context.Context, aggregate *modification.Modification) error

	// Get retrieves a modification request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*modification.Modification, error)

	// GetPendingByShipment retrieves the shipment's unresolved modification
	// request. Returns errs.ErrObjectNotFound when none is pending.
	GetPendingByShipment(ctx context.Context, shipmentID kernel.UUID) (*modification.Modification, error)
}
