package offerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/offer"
	"freightflow/internal/pkg/errs"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offer to the database.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing offer to the database.
func (r *GormOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Explicit column map: with a struct, Updates skips zero-value fields,
	// which would silently drop writes if a column ever gains a legal zero.
	result := r.db.WithContext(ctx).Model(&OfferDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"price":         dto.Price,
			"pickup_date":   dto.PickupDate,
			"delivery_date": dto.DeliveryDate,
			"status":        dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an offer by ID.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByShipment retrieves the shipment's unresolved offer.
func (r *GormOfferRepository) GetPendingByShipment(ctx context.Context, shipmentID kernel.UUID) (*offer.Offer, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	err := r.db.WithContext(ctx).
		First(&dto, "shipment_id = ? AND status = ?", shipmentID.Bytes(), offer.StatusPending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pending offer for shipment", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestByShipment retrieves the shipment's most recently issued offer.
func (r *GormOfferRepository) GetLatestByShipment(ctx context.Context, shipmentID kernel.UUID) (*offer.Offer, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&dto, "shipment_id = ?", shipmentID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer for shipment", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
