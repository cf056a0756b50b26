package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freightflow/internal/pkg/errs"
)

// GetShipmentProgressQueryHandler reads one shipment's journey log. The
// shipment row is joined in for the ownership check, so a shipper probing a
// foreign shipment and a shipper probing a missing one get different answers.
type GetShipmentProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentProgressQueryHandler creates a handler for journey log
// queries.
func NewGetShipmentProgressQueryHandler(db *gorm.DB) GetShipmentProgressQueryHandler {
	return GetShipmentProgressQueryHandler{db: db}
}

// Handle executes the query.
func (h GetShipmentProgressQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentProgressQuery,
) (GetShipmentProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentProgressQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.shipment_id,
			s.shipper_id,
			p.driver,
			p.has_driver,
			p.entries
		FROM shipment_progress p
		JOIN shipments s ON s.id = p.shipment_id
		WHERE p.shipment_id = ?
	`, query.ShipmentID().Bytes()).Row()

	var (
		shipmentID uuid.UUID
		shipperID  uuid.UUID
		driverRaw  []byte
		hasDriver  bool
		entriesRaw []byte
	)

	err := row.Scan(&shipmentID, &shipperID, &driverRaw, &hasDriver, &entriesRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentProgressQueryResponse{},
			errs.NewObjectNotFoundError("progress for shipment", query.ShipmentID().String())
	}
	if err != nil {
		return GetShipmentProgressQueryResponse{}, err
	}

	if query.Actor().IsShipper() && query.Actor().SubjectID().Bytes() != shipperID {
		return GetShipmentProgressQueryResponse{},
			errs.NewForbiddenError(query.Actor().SubjectID().String(), "shipment progress")
	}

	response := GetShipmentProgressQueryResponse{
		ShipmentID: query.ShipmentID(),
	}

	if hasDriver {
		var driver ProgressDriverResponse
		if err = json.Unmarshal(driverRaw, &driver); err != nil {
			return GetShipmentProgressQueryResponse{}, err
		}
		response.Driver = &driver
	}

	var entries []struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		At          time.Time `json:"at"`
		PdfRef      string    `json:"pdfRef"`
		ImageRef    string    `json:"imageRef"`
	}
	if err = json.Unmarshal(entriesRaw, &entries); err != nil {
		return GetShipmentProgressQueryResponse{}, err
	}

	response.Entries = make([]ProgressEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response.Entries = append(response.Entries, ProgressEntryResponse{
			Title:       entry.Title,
			Description: entry.Description,
			At:          entry.At,
			PdfRef:      entry.PdfRef,
			ImageRef:    entry.ImageRef,
		})
	}

	return response, nil
}
