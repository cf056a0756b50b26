// Package progress holds the Progress aggregate: the append-only journey log
// of a confirmed shipment, together with the assigned driver and vehicle.
package progress

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// Driver describes who and what carries the shipment.
type Driver struct {
	DriverName    string
	DriverMobile  string
	VehicleNumber string
	ChassisNumber string
}

// Validate checks the required driver fields. ChassisNumber is optional.
func (d Driver) Validate() error {
	var err error
	if d.DriverName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("driverName"))
	}
	if d.DriverMobile == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("driverMobile"))
	}
	if d.VehicleNumber == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("vehicleNumber"))
	}
	return err
}

// Entry is a single journey event. PdfRef and ImageRef point at stored
// documents and may be empty.
type Entry struct {
	Title       string
	Description string
	At          time.Time
	PdfRef      string
	ImageRef    string
}

func (e Entry) validate() error {
	var err error
	if e.Title == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("title"))
	}
	if e.At.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("at"))
	}
	return err
}

// Progress is created once per shipment when the booking is confirmed and
// only ever grows from there. Entries are never edited or removed.
type Progress struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	driver     Driver
	hasDriver  bool
	entries    []Entry

	isConstructed bool
}

// NewProgress opens the journey log with a seed entry.
func NewProgress(id, shipmentID kernel.UUID, seed Entry) (*Progress, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		seed.validate(),
	); err != nil {
		return nil, err
	}

	return &Progress{
		id:            id,
		shipmentID:    shipmentID,
		entries:       []Entry{seed},
		isConstructed: true,
	}, nil
}

// RestoreProgress rebuilds the aggregate from storage without revalidating
// business rules that held at creation time.
func RestoreProgress(id, shipmentID kernel.UUID, driver Driver, hasDriver bool, entries []Entry) (*Progress, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
	); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errs.NewValueIsRequiredError("entries")
	}

	return &Progress{
		id:            id,
		shipmentID:    shipmentID,
		driver:        driver,
		hasDriver:     hasDriver,
		entries:       entries,
		isConstructed: true,
	}, nil
}

func (p *Progress) Validate() error {
	if !p.isConstructed {
		return errs.NewValueIsRequiredError("progress")
	}
	return nil
}

// ID returns the aggregate identifier.
func (p *Progress) ID() kernel.UUID { return p.id }

// ShipmentID returns the shipment this log belongs to.
func (p *Progress) ShipmentID() kernel.UUID { return p.shipmentID }

// Driver returns the assigned driver descriptor and whether one was assigned.
func (p *Progress) Driver() (Driver, bool) { return p.driver, p.hasDriver }

// Entries returns the journey events in append order.
func (p *Progress) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Append adds a journey event to the end of the log.
func (p *Progress) Append(entry Entry) error {
	if err := entry.validate(); err != nil {
		return err
	}
	p.entries = append(p.entries, entry)
	return nil
}

// AssignDriver sets the driver descriptor and records the assignment as a
// journey event. Re-assignment overwrites the descriptor; the log keeps both
// events.
func (p *Progress) AssignDriver(driver Driver, at time.Time) error {
	if err := driver.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}

	p.driver = driver
	p.hasDriver = true
	p.entries = append(p.entries, Entry{
		Title:       "Driver assigned",
		Description: driver.DriverName + " / " + driver.VehicleNumber,
		At:          at,
	})
	return nil
}
