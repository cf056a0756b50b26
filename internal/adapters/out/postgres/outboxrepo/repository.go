package outboxrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/ports"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Enqueue persists intents as unsent outbox rows.
func (r *GormOutboxRepository) Enqueue(ctx context.Context, intents ...notification.Intent) error {
	if len(intents) == 0 {
		return nil
	}

	dtos := make([]OutboxDTO, 0, len(intents))
	for _, intent := range intents {
		dto, err := fromIntent(intent)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// CollectUnsent retrieves up to limit unsent messages in creation order.
func (r *GormOutboxRepository) CollectUnsent(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		message, err := toMessage(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// MarkSent stamps the messages as delivered.
func (r *GormOutboxRepository) MarkSent(ctx context.Context, ids ...kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&OutboxDTO{}).
		Where("id IN ?", raw).
		Update("sent_at", &now).Error
}
