package ports

import (
	"context"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offer aggregates.
type OfferRepository interface {
	// Add persists a new offer aggregate to storage.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update persists changes to an existing offer aggregate.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// Get retrieves an offer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetPendingByShipment retrieves the shipment's unresolved offer.
	// Returns errs.ErrObjectNotFound when none is pending.
	GetPendingByShipment(ctx context.Context, shipmentID kernel.UUID) (*offer.Offer, error)

	// GetLatestByShipment retrieves the shipment's most recently issued
	// offer regardless of status. Returns errs.ErrObjectNotFound when the
	// shipment never had an offer.
	GetLatestByShipment(ctx context.Context, shipmentID kernel.UUID) (*offer.Offer, error)
}
