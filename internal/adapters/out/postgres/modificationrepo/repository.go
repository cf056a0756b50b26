package modificationrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/modification"
	"freightflow/internal/pkg/errs"
)

// GormModificationRepository implements ModificationRepository using GORM.
type GormModificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormModificationRepository creates a new GORM modification repository.
func NewGormModificationRepository(db *gorm.DB, tracker aggregateTracker) *GormModificationRepository {
	return &GormModificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new modification request to the database.
func (r *GormModificationRepository) Add(ctx context.Context, aggregate *modification.Modification) error {
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

// Update saves an existing modification request to the database.
func (r *GormModificationRepository) Update(ctx context.Context, aggregate *modification.Modification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	// Updates skips zero values, and a rejected review leaves every column
	// except status and resolved untouched, so write those two explicitly.
	result := r.db.WithContext(ctx).Model(&ModificationDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"proposed":      dto.Proposed,
			"changes":       dto.Changes,
			"change_reason": dto.ChangeReason,
			"status":        dto.Status,
			"resolved":      dto.Resolved,
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

// Get retrieves a modification request by ID.
func (r *GormModificationRepository) Get(ctx context.Context, id kernel.UUID) (*modification.Modification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ModificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("modification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByShipment retrieves the shipment's unresolved modification
// request.
func (r *GormModificationRepository) GetPendingByShipment(ctx context.Context, shipmentID kernel.UUID) (*modification.Modification, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto ModificationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "shipment_id = ? AND status = ?", shipmentID.Bytes(), int(modification.StatusPending)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pending modification for shipment", shipmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
