package shipment

import (
	"errors"
	"fmt"
	"time"

	"freightflow/internal/pkg/errs"
)

// Enumerated field values carried over from the booking form.
const (
	MaterialTypeOthers = "Others"

	BodyTypeClosed = "Closed"

	ShipmentTypeFullTruckLoad = "full_truck_load"
	ShipmentTypePartTruckLoad = "part_truck_load"
)

// Address is one end of the route.
type Address struct {
	Line1   string
	Line2   string
	State   string
	Pincode string
}

func (a Address) validate(prefix string) error {
	var errsList []error
	if a.Line1 == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError(prefix+"AddressLine1"))
	}
	if a.State == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError(prefix+"State"))
	}
	if a.Pincode == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError(prefix+"Pincode"))
	}
	return errors.Join(errsList...)
}

// Route is the pickup and drop pair.
type Route struct {
	Pickup Address
	Drop   Address
}

// Schedule carries the expected pickup and delivery dates.
type Schedule struct {
	PickupDate   time.Time
	DeliveryDate time.Time
}

// Cargo describes what is being moved.
type Cargo struct {
	MaterialType       string
	CustomMaterialType string
	WeightKg           float64
	LengthFt           float64
	WidthFt            float64
	HeightFt           float64
	MaterialValue      float64
}

// Logistics describes how it is to be moved.
type Logistics struct {
	TransportMode string
	ShipmentType  string
	BodyType      string
	TruckSize     string
	Manpower      bool
	NoOfLabours   int
	CoolingType   string
}

// Details groups every shipper-editable attribute of a shipment. It is shared
// between the Shipment aggregate and modification proposals so that the two
// are always compared and applied field-for-field.
type Details struct {
	Route           Route
	Schedule        Schedule
	Cargo           Cargo
	Logistics       Logistics
	AdditionalNotes string
}

// Validate enforces the booking-form rules: required fields plus the
// conditional ones (custom material type when the material is "Others",
// labour count when manpower is requested, cooling type for closed bodies).
func (d Details) Validate() error {
	var errsList []error

	if err := d.Route.Pickup.validate("pickup"); err != nil {
		errsList = append(errsList, err)
	}
	if err := d.Route.Drop.validate("drop"); err != nil {
		errsList = append(errsList, err)
	}

	if d.Schedule.PickupDate.IsZero() {
		errsList = append(errsList, errs.NewValueIsRequiredError("expectedPickupDate"))
	}
	if d.Schedule.DeliveryDate.IsZero() {
		errsList = append(errsList, errs.NewValueIsRequiredError("expectedDeliveryDate"))
	}

	if d.Cargo.MaterialType == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("materialType"))
	}
	if d.Cargo.MaterialType == MaterialTypeOthers && d.Cargo.CustomMaterialType == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("customMaterialType"))
	}
	if d.Cargo.WeightKg <= 0 {
		errsList = append(errsList, errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%v is not greater than 0", d.Cargo.WeightKg)))
	}
	if d.Cargo.MaterialValue <= 0 {
		errsList = append(errsList, errs.NewValueIsInvalidErrorWithCause("materialValue",
			fmt.Errorf("%v is not greater than 0", d.Cargo.MaterialValue)))
	}

	switch d.Logistics.ShipmentType {
	case ShipmentTypeFullTruckLoad, ShipmentTypePartTruckLoad:
	case "":
		errsList = append(errsList, errs.NewValueIsRequiredError("shipmentType"))
	default:
		errsList = append(errsList, errs.NewValueIsInvalidErrorWithCause("shipmentType",
			fmt.Errorf("%q is not a valid shipment type", d.Logistics.ShipmentType)))
	}

	if d.Logistics.BodyType == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("bodyType"))
	}
	if d.Logistics.BodyType == BodyTypeClosed && d.Logistics.CoolingType == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("coolingType"))
	}
	if d.Logistics.Manpower && d.Logistics.NoOfLabours <= 0 {
		errsList = append(errsList, errs.NewValueIsInvalidErrorWithCause("noOfLabours",
			fmt.Errorf("%d labourers requested with manpower enabled", d.Logistics.NoOfLabours)))
	}

	return errors.Join(errsList...)
}

// FieldChange records one field of a modification diff.
type FieldChange struct {
	Old any
	New any
}

// Diff compares two detail sets field by field and returns the changes keyed
// by the booking-form field name. An empty map means the proposal changes
// nothing.
func Diff(current, proposed Details) map[string]FieldChange {
	changes := make(map[string]FieldChange)

	record := func(field string, oldV, newV any) {
		if oldV != newV {
			changes[field] = FieldChange{Old: oldV, New: newV}
		}
	}

	record("pickupAddressLine1", current.Route.Pickup.Line1, proposed.Route.Pickup.Line1)
	record("pickupAddressLine2", current.Route.Pickup.Line2, proposed.Route.Pickup.Line2)
	record("pickupState", current.Route.Pickup.State, proposed.Route.Pickup.State)
	record("pickupPincode", current.Route.Pickup.Pincode, proposed.Route.Pickup.Pincode)
	record("dropAddressLine1", current.Route.Drop.Line1, proposed.Route.Drop.Line1)
	record("dropAddressLine2", current.Route.Drop.Line2, proposed.Route.Drop.Line2)
	record("dropState", current.Route.Drop.State, proposed.Route.Drop.State)
	record("dropPincode", current.Route.Drop.Pincode, proposed.Route.Drop.Pincode)

	if !current.Schedule.PickupDate.Equal(proposed.Schedule.PickupDate) {
		changes["expectedPickupDate"] = FieldChange{
			Old: current.Schedule.PickupDate, New: proposed.Schedule.PickupDate,
		}
	}
	if !current.Schedule.DeliveryDate.Equal(proposed.Schedule.DeliveryDate) {
		changes["expectedDeliveryDate"] = FieldChange{
			Old: current.Schedule.DeliveryDate, New: proposed.Schedule.DeliveryDate,
		}
	}

	record("materialType", current.Cargo.MaterialType, proposed.Cargo.MaterialType)
	record("customMaterialType", current.Cargo.CustomMaterialType, proposed.Cargo.CustomMaterialType)
	record("weightKg", current.Cargo.WeightKg, proposed.Cargo.WeightKg)
	record("lengthFt", current.Cargo.LengthFt, proposed.Cargo.LengthFt)
	record("widthFt", current.Cargo.WidthFt, proposed.Cargo.WidthFt)
	record("heightFt", current.Cargo.HeightFt, proposed.Cargo.HeightFt)
	record("materialValue", current.Cargo.MaterialValue, proposed.Cargo.MaterialValue)

	record("transportMode", current.Logistics.TransportMode, proposed.Logistics.TransportMode)
	record("shipmentType", current.Logistics.ShipmentType, proposed.Logistics.ShipmentType)
	record("bodyType", current.Logistics.BodyType, proposed.Logistics.BodyType)
	record("truckSize", current.Logistics.TruckSize, proposed.Logistics.TruckSize)
	record("manpower", current.Logistics.Manpower, proposed.Logistics.Manpower)
	record("noOfLabours", current.Logistics.NoOfLabours, proposed.Logistics.NoOfLabours)
	record("coolingType", current.Logistics.CoolingType, proposed.Logistics.CoolingType)

	record("additionalNotes", current.AdditionalNotes, proposed.AdditionalNotes)

	return changes
}
