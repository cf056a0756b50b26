package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/offer"
)

// GetOffersQueryHandler reads offer rows for the negotiation views.
type GetOffersQueryHandler struct {
	db *gorm.DB
}

// NewGetOffersQueryHandler creates a handler for offer list queries.
func NewGetOffersQueryHandler(db *gorm.DB) GetOffersQueryHandler {
	return GetOffersQueryHandler{db: db}
}

// Handle executes the query, scoping shippers to their own offers in SQL.
func (h GetOffersQueryHandler) Handle(
	ctx context.Context,
	query GetOffersQuery,
) ([]GetOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			shipment_id,
			shipper_id,
			price,
			pickup_date,
			delivery_date,
			status,
			created_at
		FROM offers
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

	offers := make([]GetOffersQueryResponse, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			shipmentID   uuid.UUID
			shipperID    uuid.UUID
			price        float64
			pickupDate   time.Time
			deliveryDate time.Time
			status       int
			createdAt    time.Time
		)

		err = rows.Scan(&id, &shipmentID, &shipperID, &price, &pickupDate, &deliveryDate, &status, &createdAt)
		if err != nil {
			return nil, err
		}

		offerID, idErr := kernel.UUIDFromBytes(id[:])
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

		offers = append(offers, GetOffersQueryResponse{
			ID:           offerID,
			ShipmentID:   parentID,
			ShipperID:    ownerID,
			Price:        price,
			PickupDate:   pickupDate,
			DeliveryDate: deliveryDate,
			Status:       offer.Status(status).String(),
			CreatedAt:    createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
