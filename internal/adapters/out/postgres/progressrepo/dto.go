// Package progressrepo provides data transfer objects and mapping functions
// for journey progress persistence. The timeline is an append-only jsonb
// array; the driver descriptor lives in its own jsonb column because it is
// assigned once and read on every timeline view.
package progressrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/progress"
)

// ProgressDTO represents the database structure for persisting journey
// progress. One row per shipment.
type ProgressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Driver     []byte    `gorm:"type:jsonb"`
	HasDriver  bool
	Entries    []byte `gorm:"type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides GORM's default naming convention.
func (ProgressDTO) TableName() string {
	return "shipment_progress"
}

type driverDoc struct {
	DriverName    string `json:"driverName"`
	DriverMobile  string `json:"driverMobile"`
	VehicleNumber string `json:"vehicleNumber"`
	ChassisNumber string `json:"chassisNumber,omitempty"`
}

type entryDoc struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	At          time.Time `json:"at"`
	PdfRef      string    `json:"pdfRef,omitempty"`
	ImageRef    string    `json:"imageRef,omitempty"`
}

func fromDomain(aggregate *progress.Progress) (ProgressDTO, error) {
	driver, hasDriver := aggregate.Driver()
	driverRaw, err := json.Marshal(driverDoc{
		DriverName:    driver.DriverName,
		DriverMobile:  driver.DriverMobile,
		VehicleNumber: driver.VehicleNumber,
		ChassisNumber: driver.ChassisNumber,
	})
	if err != nil {
		return ProgressDTO{}, err
	}

	entries := aggregate.Entries()
	docs := make([]entryDoc, 0, len(entries))
	for _, entry := range entries {
		docs = append(docs, entryDoc{
			Title:       entry.Title,
			Description: entry.Description,
			At:          entry.At,
			PdfRef:      entry.PdfRef,
			ImageRef:    entry.ImageRef,
		})
	}

	entriesRaw, err := json.Marshal(docs)
	if err != nil {
		return ProgressDTO{}, err
	}

	return ProgressDTO{
		ID:         aggregate.ID().Bytes(),
		ShipmentID: aggregate.ShipmentID().Bytes(),
		Driver:     driverRaw,
		HasDriver:  hasDriver,
		Entries:    entriesRaw,
	}, nil
}

func toDomain(dto ProgressDTO) (*progress.Progress, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	var driver driverDoc
	if err = json.Unmarshal(dto.Driver, &driver); err != nil {
		return nil, err
	}

	var docs []entryDoc
	if err = json.Unmarshal(dto.Entries, &docs); err != nil {
		return nil, err
	}

	entries := make([]progress.Entry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, progress.Entry{
			Title:       doc.Title,
			Description: doc.Description,
			At:          doc.At,
			PdfRef:      doc.PdfRef,
			ImageRef:    doc.ImageRef,
		})
	}

	return progress.RestoreProgress(id, shipmentID, progress.Driver{
		DriverName:    driver.DriverName,
		DriverMobile:  driver.DriverMobile,
		VehicleNumber: driver.VehicleNumber,
		ChassisNumber: driver.ChassisNumber,
	}, dto.HasDriver, entries)
}
