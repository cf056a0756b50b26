// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence.
package paymentrepo

import (
	"time"

	"github.com/google/uuid"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/payment"
)

// PaymentDTO represents the database structure for persisting payments.
type PaymentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	ShipperID  uuid.UUID `gorm:"type:uuid;index"`
	Kind       int
	Amount     float64
	ToAccount  string
	ProofRef   string
	Status     int `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides GORM's default naming convention.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:         aggregate.ID().Bytes(),
		ShipmentID: aggregate.ShipmentID().Bytes(),
		ShipperID:  aggregate.ShipperID().Bytes(),
		Kind:       int(aggregate.Kind()),
		Amount:     aggregate.Amount(),
		ToAccount:  aggregate.ToAccount(),
		ProofRef:   aggregate.ProofRef(),
		Status:     int(aggregate.Status()),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
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

	return payment.RestorePayment(
		id, shipmentID, shipperID,
		payment.Kind(dto.Kind),
		dto.Amount,
		dto.ToAccount, dto.ProofRef,
		payment.Status(dto.Status),
	)
}
