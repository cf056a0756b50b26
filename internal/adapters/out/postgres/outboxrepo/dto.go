// Package outboxrepo persists notification intents in the same database as
// the aggregates, so enqueueing shares the command's transaction.
package outboxrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/ports"
)

// OutboxDTO represents the database structure for persisting outbox messages.
// ShipperID is null for admin broadcasts.
type OutboxDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Audience  string
	ShipperID *uuid.UUID `gorm:"type:uuid"`
	Template  string
	Payload   []byte     `gorm:"type:jsonb"`
	CreatedAt time.Time  `gorm:"index"`
	SentAt    *time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (OutboxDTO) TableName() string {
	return "notification_outbox"
}

func fromIntent(intent notification.Intent) (OutboxDTO, error) {
	payload, err := json.Marshal(intent.Data())
	if err != nil {
		return OutboxDTO{}, err
	}

	dto := OutboxDTO{
		ID:       kernel.NewUUID().Bytes(),
		Audience: string(intent.Audience()),
		Template: intent.Template(),
		Payload:  payload,
	}

	if intent.Audience() == notification.AudienceShipper {
		shipperID := intent.ShipperID().Bytes()
		dto.ShipperID = &shipperID
	}

	return dto, nil
}

func toMessage(dto OutboxDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	var shipperID kernel.UUID
	if dto.ShipperID != nil {
		shipperID, err = kernel.UUIDFromBytes(dto.ShipperID[:])
		if err != nil {
			return ports.OutboxMessage{}, err
		}
	}

	var payload map[string]any
	if err = json.Unmarshal(dto.Payload, &payload); err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:        id,
		Audience:  notification.Audience(dto.Audience),
		ShipperID: shipperID,
		Template:  dto.Template,
		Payload:   payload,
		CreatedAt: dto.CreatedAt,
		SentAt:    dto.SentAt,
	}, nil
}
