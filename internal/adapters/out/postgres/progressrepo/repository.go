package progressrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/progress"
	"freightflow/internal/pkg/errs"
)

// GormProgressRepository implements ProgressRepository using GORM.
type GormProgressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProgressRepository creates a new GORM progress repository.
func NewGormProgressRepository(db *gorm.DB, tracker aggregateTracker) *GormProgressRepository {
	return &GormProgressRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new progress timeline to the database.
func (r *GormProgressRepository) Add(ctx context.Context, aggregate *progress.Progress) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing progress timeline to the database.
func (r *GormProgressRepository) Update(ctx context.Context, aggregate *progress.Progress) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ProgressDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"driver":     dto.Driver,
			"has_driver": dto.HasDriver,
			"entries":    dto.Entries,
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

// GetByShipment retrieves the shipment's progress timeline.
func (r *GormProgressRepository) GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*progress.Progress, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto ProgressDTO
	if err := r.db.WithContext(ctx).First(&dto, "shipment_id = ?", shipmentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("progress for shipment", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
