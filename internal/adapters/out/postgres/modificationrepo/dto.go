// Package modificationrepo provides data transfer objects and mapping
// functions for modification request persistence. The proposed details reuse
// the shipment jsonb document; the per-field diff is stored as its own jsonb
// map so the admin view never recomputes it.
package modificationrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"freightflow/internal/adapters/out/postgres/shipmentrepo"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/modification"
	"freightflow/internal/core/domain/model/shipment"
)

// ModificationDTO represents the database structure for persisting
// modification requests.
type ModificationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID   uuid.UUID `gorm:"type:uuid;index"`
	ShipperID    uuid.UUID `gorm:"type:uuid;index"`
	Proposed     []byte    `gorm:"type:jsonb"`
	Changes      []byte    `gorm:"type:jsonb"`
	ChangeReason string
	Status       int `gorm:"index"`
	Resolved     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming convention.
func (ModificationDTO) TableName() string {
	return "shipment_modifications"
}

// fieldChangeDoc is the jsonb layout of one diff entry.
type fieldChangeDoc struct {
	Old any `json:"old"`
	New any `json:"new"`
}

func fromDomain(aggregate *modification.Modification) (ModificationDTO, error) {
	proposed, err := json.Marshal(shipmentrepo.DetailsToDoc(aggregate.Proposed()))
	if err != nil {
		return ModificationDTO{}, err
	}

	changes := make(map[string]fieldChangeDoc, len(aggregate.Changes()))
	for field, change := range aggregate.Changes() {
		changes[field] = fieldChangeDoc{Old: change.Old, New: change.New}
	}

	changesRaw, err := json.Marshal(changes)
	if err != nil {
		return ModificationDTO{}, err
	}

	return ModificationDTO{
		ID:           aggregate.ID().Bytes(),
		ShipmentID:   aggregate.ShipmentID().Bytes(),
		ShipperID:    aggregate.ShipperID().Bytes(),
		Proposed:     proposed,
		Changes:      changesRaw,
		ChangeReason: aggregate.ChangeReason(),
		Status:       int(aggregate.Status()),
		Resolved:     aggregate.Resolved(),
	}, nil
}

func toDomain(dto ModificationDTO) (*modification.Modification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	var doc shipmentrepo.DetailsDoc
	if err = json.Unmarshal(dto.Proposed, &doc); err != nil {
		return nil, err
	}

	var changeDocs map[string]fieldChangeDoc
	if err = json.Unmarshal(dto.Changes, &changeDocs); err != nil {
		return nil, err
	}

	changes := make(map[string]shipment.FieldChange, len(changeDocs))
	for field, change := range changeDocs {
		changes[field] = shipment.FieldChange{Old: change.Old, New: change.New}
	}

	return modification.RestoreModification(
		id, shipmentID, shipperID,
		shipmentrepo.DocToDetails(doc), changes, dto.ChangeReason,
		modification.Status(dto.Status), dto.Resolved)
}
