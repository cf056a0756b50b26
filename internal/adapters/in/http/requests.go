package http

import (
	"time"

	"freightflow/internal/core/domain/model/progress"
	"freightflow/internal/core/domain/model/shipment"
)

// ShipmentDetailsRequest is the booking form payload, shared by shipment
// creation and modification requests. Field names match the stored jsonb
// document so the diff view speaks the same vocabulary.
type ShipmentDetailsRequest struct {
	PickupAddressLine1   string    `json:"pickupAddressLine1"`
	PickupAddressLine2   string    `json:"pickupAddressLine2"`
	PickupState          string    `json:"pickupState"`
	PickupPincode        string    `json:"pickupPincode"`
	DropAddressLine1     string    `json:"dropAddressLine1"`
	DropAddressLine2     string    `json:"dropAddressLine2"`
	DropState            string    `json:"dropState"`
	DropPincode          string    `json:"dropPincode"`
	ExpectedPickupDate   time.Time `json:"expectedPickupDate"`
	ExpectedDeliveryDate time.Time `json:"expectedDeliveryDate"`
	MaterialType         string    `json:"materialType"`
	CustomMaterialType   string    `json:"customMaterialType"`
	WeightKg             float64   `json:"weightKg"`
	LengthFt             float64   `json:"lengthFt"`
	WidthFt              float64   `json:"widthFt"`
	HeightFt             float64   `json:"heightFt"`
	MaterialValue        float64   `json:"materialValue"`
	TransportMode        string    `json:"transportMode"`
	ShipmentType         string    `json:"shipmentType"`
	BodyType             string    `json:"bodyType"`
	TruckSize            string    `json:"truckSize"`
	Manpower             bool      `json:"manpower"`
	NoOfLabours          int       `json:"noOfLabours"`
	CoolingType          string    `json:"coolingType"`
	AdditionalNotes      string    `json:"additionalNotes"`
}

func (r ShipmentDetailsRequest) toDomain() shipment.Details {
	return shipment.Details{
		Route: shipment.Route{
			Pickup: shipment.Address{
				Line1:   r.PickupAddressLine1,
				Line2:   r.PickupAddressLine2,
				State:   r.PickupState,
				Pincode: r.PickupPincode,
			},
			Drop: shipment.Address{
				Line1:   r.DropAddressLine1,
				Line2:   r.DropAddressLine2,
				State:   r.DropState,
				Pincode: r.DropPincode,
			},
		},
		Schedule: shipment.Schedule{
			PickupDate:   r.ExpectedPickupDate,
			DeliveryDate: r.ExpectedDeliveryDate,
		},
		Cargo: shipment.Cargo{
			MaterialType:       r.MaterialType,
			CustomMaterialType: r.CustomMaterialType,
			WeightKg:           r.WeightKg,
			LengthFt:           r.LengthFt,
			WidthFt:            r.WidthFt,
			HeightFt:           r.HeightFt,
			MaterialValue:      r.MaterialValue,
		},
		Logistics: shipment.Logistics{
			TransportMode: r.TransportMode,
			ShipmentType:  r.ShipmentType,
			BodyType:      r.BodyType,
			TruckSize:     r.TruckSize,
			Manpower:      r.Manpower,
			NoOfLabours:   r.NoOfLabours,
			CoolingType:   r.CoolingType,
		},
		AdditionalNotes: r.AdditionalNotes,
	}
}

// RequestShipmentRequest is the POST /shipments payload.
type RequestShipmentRequest struct {
	Details     ShipmentDetailsRequest `json:"details"`
	EwayBillRef string                 `json:"ewayBillRef"`
}

// OfferTermsRequest carries the negotiated terms for issuing or revising an
// offer.
type OfferTermsRequest struct {
	Price        float64   `json:"price"`
	PickupDate   time.Time `json:"pickupDate"`
	DeliveryDate time.Time `json:"deliveryDate"`
}

// RespondRequest is the accept-or-reject decision body, shared by the offer
// response and the modification review.
type RespondRequest struct {
	Accept bool `json:"accept"`
}

// RequestModificationRequest is the POST /shipments/:id/modifications
// payload.
type RequestModificationRequest struct {
	Proposed     ShipmentDetailsRequest `json:"proposed"`
	ChangeReason string                 `json:"changeReason"`
}

// CreatePaymentRequest is the POST /shipments/:id/payments payload.
type CreatePaymentRequest struct {
	Kind      string  `json:"kind"`
	Amount    float64 `json:"amount"`
	ToAccount string  `json:"toAccount"`
}

// UploadProofRequest is the POST /payments/:id/proof payload.
type UploadProofRequest struct {
	ProofRef string `json:"proofRef"`
}

// VerifyPaymentRequest is the POST /payments/:id/verify payload.
type VerifyPaymentRequest struct {
	Approved bool `json:"approved"`
}

// AssignDriverRequest is the POST /shipments/:id/driver payload.
type AssignDriverRequest struct {
	DriverName    string `json:"driverName"`
	DriverMobile  string `json:"driverMobile"`
	VehicleNumber string `json:"vehicleNumber"`
	ChassisNumber string `json:"chassisNumber"`
}

func (r AssignDriverRequest) toDomain() progress.Driver {
	return progress.Driver{
		DriverName:    r.DriverName,
		DriverMobile:  r.DriverMobile,
		VehicleNumber: r.VehicleNumber,
		ChassisNumber: r.ChassisNumber,
	}
}

// ProgressUpdateRequest is the POST /shipments/:id/progress payload.
type ProgressUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PdfRef      string `json:"pdfRef"`
	ImageRef    string `json:"imageRef"`
}
