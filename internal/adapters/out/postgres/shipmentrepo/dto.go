// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The booking-form details travel as one jsonb
// document; the columns the system filters and locks on stay relational.
package shipmentrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates.
type ShipmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipperID   uuid.UUID `gorm:"type:uuid;index"`
	Details     []byte    `gorm:"type:jsonb"`
	EwayBillRef string
	Status      int `gorm:"index"`
	Cost        *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming convention.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) (ShipmentDTO, error) {
	details, err := json.Marshal(DetailsToDoc(aggregate.Details()))
	if err != nil {
		return ShipmentDTO{}, err
	}

	return ShipmentDTO{
		ID:          aggregate.ID().Bytes(),
		ShipperID:   aggregate.ShipperID().Bytes(),
		Details:     details,
		EwayBillRef: aggregate.EwayBillRef(),
		Status:      int(aggregate.Status()),
		Cost:        aggregate.Cost(),
	}, nil
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	var doc DetailsDoc
	if err = json.Unmarshal(dto.Details, &doc); err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id, shipperID, doc.toDomain(), dto.EwayBillRef,
		shipment.Status(dto.Status), dto.Cost)
}

// DetailsDoc is the jsonb layout of the booking-form details. Exported so
// the read-model queries can decode the same document.
type DetailsDoc struct {
	PickupAddressLine1   string    `json:"pickupAddressLine1"`
	PickupAddressLine2   string    `json:"pickupAddressLine2,omitempty"`
	PickupState          string    `json:"pickupState"`
	PickupPincode        string    `json:"pickupPincode"`
	DropAddressLine1     string    `json:"dropAddressLine1"`
	DropAddressLine2     string    `json:"dropAddressLine2,omitempty"`
	DropState            string    `json:"dropState"`
	DropPincode          string    `json:"dropPincode"`
	ExpectedPickupDate   time.Time `json:"expectedPickupDate"`
	ExpectedDeliveryDate time.Time `json:"expectedDeliveryDate"`
	MaterialType         string    `json:"materialType"`
	CustomMaterialType   string    `json:"customMaterialType,omitempty"`
	WeightKg             float64   `json:"weightKg"`
	LengthFt             float64   `json:"lengthFt,omitempty"`
	WidthFt              float64   `json:"widthFt,omitempty"`
	HeightFt             float64   `json:"heightFt,omitempty"`
	MaterialValue        float64   `json:"materialValue"`
	TransportMode        string    `json:"transportMode,omitempty"`
	ShipmentType         string    `json:"shipmentType"`
	BodyType             string    `json:"bodyType"`
	TruckSize            string    `json:"truckSize,omitempty"`
	Manpower             bool      `json:"manpower"`
	NoOfLabours          int       `json:"noOfLabours,omitempty"`
	CoolingType          string    `json:"coolingType,omitempty"`
	AdditionalNotes      string    `json:"additionalNotes,omitempty"`
}

// DetailsToDoc maps domain details onto the jsonb document.
func DetailsToDoc(d shipment.Details) DetailsDoc {
	return DetailsDoc{
		PickupAddressLine1:   d.Route.Pickup.Line1,
		PickupAddressLine2:   d.Route.Pickup.Line2,
		PickupState:          d.Route.Pickup.State,
		PickupPincode:        d.Route.Pickup.Pincode,
		DropAddressLine1:     d.Route.Drop.Line1,
		DropAddressLine2:     d.Route.Drop.Line2,
		DropState:            d.Route.Drop.State,
		DropPincode:          d.Route.Drop.Pincode,
		ExpectedPickupDate:   d.Schedule.PickupDate,
		ExpectedDeliveryDate: d.Schedule.DeliveryDate,
		MaterialType:         d.Cargo.MaterialType,
		CustomMaterialType:   d.Cargo.CustomMaterialType,
		WeightKg:             d.Cargo.WeightKg,
		LengthFt:             d.Cargo.LengthFt,
		WidthFt:              d.Cargo.WidthFt,
		HeightFt:             d.Cargo.HeightFt,
		MaterialValue:        d.Cargo.MaterialValue,
		TransportMode:        d.Logistics.TransportMode,
		ShipmentType:         d.Logistics.ShipmentType,
		BodyType:             d.Logistics.BodyType,
		TruckSize:            d.Logistics.TruckSize,
		Manpower:             d.Logistics.Manpower,
		NoOfLabours:          d.Logistics.NoOfLabours,
		CoolingType:          d.Logistics.CoolingType,
		AdditionalNotes:      d.AdditionalNotes,
	}
}

// DocToDetails maps the jsonb document back to domain details.
func DocToDetails(doc DetailsDoc) shipment.Details {
	return doc.toDomain()
}

func (doc DetailsDoc) toDomain() shipment.Details {
	return shipment.Details{
		Route: shipment.Route{
			Pickup: shipment.Address{
				Line1:   doc.PickupAddressLine1,
				Line2:   doc.PickupAddressLine2,
				State:   doc.PickupState,
				Pincode: doc.PickupPincode,
			},
			Drop: shipment.Address{
				Line1:   doc.DropAddressLine1,
				Line2:   doc.DropAddressLine2,
				State:   doc.DropState,
				Pincode: doc.DropPincode,
			},
		},
		Schedule: shipment.Schedule{
			PickupDate:   doc.ExpectedPickupDate,
			DeliveryDate: doc.ExpectedDeliveryDate,
		},
		Cargo: shipment.Cargo{
			MaterialType:       doc.MaterialType,
			CustomMaterialType: doc.CustomMaterialType,
			WeightKg:           doc.WeightKg,
			LengthFt:           doc.LengthFt,
			WidthFt:            doc.WidthFt,
			HeightFt:           doc.HeightFt,
			MaterialValue:      doc.MaterialValue,
		},
		Logistics: shipment.Logistics{
			TransportMode: doc.TransportMode,
			ShipmentType:  doc.ShipmentType,
			BodyType:      doc.BodyType,
			TruckSize:     doc.TruckSize,
			Manpower:      doc.Manpower,
			NoOfLabours:   doc.NoOfLabours,
			CoolingType:   doc.CoolingType,
		},
		AdditionalNotes: doc.AdditionalNotes,
	}
}
