package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/modification"
	"freightflow/internal/core/domain/model/shipment"
)

// GetModificationsQueryHandler reads modification requests for the review
// views. The stored per-field diff is returned as-is; it was computed against
// the details current at request time.
type GetModificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetModificationsQueryHandler creates a handler for modification list
// queries.
func NewGetModificationsQueryHandler(db *gorm.DB) GetModificationsQueryHandler {
	return GetModificationsQueryHandler{db: db}
}

// Handle executes the query, scoping shippers to their own requests in SQL.
func (h GetModificationsQueryHandler) Handle(
	ctx context.Context,
	query GetModificationsQuery,
) ([]GetModificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			shipment_id,
			shipper_id,
			changes,
			change_reason,
			status,
			resolved,
			created_at
		FROM shipment_modifications
	`
	args := make([]any, 0, 1)
	if query.Actor().IsShipper() {
		sql += ` WHERE shipper_id = ?`
		args = append(args, query.Actor().SubjectID().Bytes())
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]GetModificationsQueryResponse, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			shipmentID   uuid.UUID
			shipperID    uuid.UUID
			changesRaw   []byte
			changeReason string
			status       int
			resolved     bool
			createdAt    time.Time
		)

		err = rows.Scan(&id, &shipmentID, &shipperID, &changesRaw, &changeReason, &status, &resolved, &createdAt)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		parentID, idErr := kernel.UUIDFromBytes(shipmentID[:])
		if idErr != nil {
			return nil, idErr
		}

		ownerID, idErr := kernel.UUIDFromBytes(shipperID[:])
		if idErr != nil {
			return nil, idErr
		}

		var changes map[string]shipment.FieldChange
		if err = json.Unmarshal(changesRaw, &changes); err != nil {
			return nil, err
		}

		requests = append(requests, GetModificationsQueryResponse{
			ID:           requestID,
			ShipmentID:   parentID,
			ShipperID:    ownerID,
			Changes:      changes,
			ChangeReason: changeReason,
			Status:       modification.Status(status).String(),
			Resolved:     resolved,
			CreatedAt:    createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
