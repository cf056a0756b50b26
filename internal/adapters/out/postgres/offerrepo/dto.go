// Package offerrepo provides data transfer objects and mapping functions for
// offer persistence.
package offerrepo

import (
	"time"

	"github.com/google/uuid"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/offer"
)

// OfferDTO represents the database structure for persisting offer aggregates.
type OfferDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID   uuid.UUID `gorm:"type:uuid;index"`
	ShipperID    uuid.UUID `gorm:"type:uuid;index"`
	Price        float64
	PickupDate   time.Time
	DeliveryDate time.Time
	Status       int `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming convention.
func (OfferDTO) TableName() string {
	return "offers"
}

func fromDomain(aggregate *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:           aggregate.ID().Bytes(),
		ShipmentID:   aggregate.ShipmentID().Bytes(),
		ShipperID:    aggregate.ShipperID().Bytes(),
		Price:        aggregate.Price(),
		PickupDate:   aggregate.PickupDate(),
		DeliveryDate: aggregate.DeliveryDate(),
		Status:       int(aggregate.Status()),
	}
}

func toDomain(dto OfferDTO) (*offer.Offer, error) {
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

	return offer.RestoreOffer(
		id, shipmentID, shipperID,
		dto.Price, dto.PickupDate, dto.DeliveryDate,
		offer.Status(dto.Status))
}
