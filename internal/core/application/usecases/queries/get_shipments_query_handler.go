package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freightflow/internal/adapters/out/postgres/shipmentrepo"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/shipment"
)

// GetShipmentsQueryHandler reads shipment rows for the booking list views.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment list queries.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the query. Shippers only ever see rows carrying their own
// shipper id; the scoping happens in SQL, not after the fact.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) ([]GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			shipper_id,
			status,
			eway_bill_ref,
			cost,
			details,
			created_at
		FROM shipments
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

	shipments := make([]GetShipmentsQueryResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			shipperID  uuid.UUID
			status     int
			ewayBill   string
			cost       *float64
			detailsRaw []byte
			createdAt  time.Time
		)

		if err = rows.Scan(&id, &shipperID, &status, &ewayBill, &cost, &detailsRaw, &createdAt); err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		ownerID, idErr := kernel.UUIDFromBytes(shipperID[:])
		if idErr != nil {
			return nil, idErr
		}

		var details shipmentrepo.DetailsDoc
		if err = json.Unmarshal(detailsRaw, &details); err != nil {
			return nil, err
		}

		shipments = append(shipments, GetShipmentsQueryResponse{
			ID:          shipmentID,
			ShipperID:   ownerID,
			Status:      shipment.Status(status).String(),
			EwayBillRef: ewayBill,
			Cost:        cost,
			Details:     details,
			CreatedAt:   createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
