// Package modification contains the ShipmentModification aggregate: a
// shipper-proposed change to an open shipment's booking details, awaiting
// broker review. At most one pending modification may exist per shipment.
package modification

import (
	"errors"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/shipment"
)

var (
	// ErrModificationIsNotConstructed is returned for zero-value instances.
	ErrModificationIsNotConstructed = errors.New(
		"Modification must be created via NewModification constructor")

	// ErrNoChanges rejects a proposal whose diff against the current details
	// is empty.
	ErrNoChanges = errors.New("modification request contains no changes")
)

// Modification is one proposed change set. The full proposed details are kept
// so an acceptance applies them wholesale; the diff is kept alongside for
// review and notification payloads.
//
// Once resolved (accepted or rejected) a modification is immutable.
type Modification struct {
	id           kernel.UUID
	shipmentID   kernel.UUID
	shipperID    kernel.UUID
	proposed     shipment.Details
	changes      map[string]shipment.FieldChange
	changeReason string
	status       Status
	resolved     bool

	isConstructed bool
}

// NewModification creates a pending modification. The diff is computed here,
// against the shipment's current details, so a degenerate proposal is caught
// before anything is persisted.
func NewModification(
	id, shipmentID, shipperID kernel.UUID,
	current, proposed shipment.Details,
	changeReason string,
) (*Modification, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		shipperID.Validate(),
		proposed.Validate(),
	); err != nil {
		return nil, err
	}

	changes := shipment.Diff(current, proposed)
	if len(changes) == 0 {
		return nil, ErrNoChanges
	}

	return &Modification{
		id:            id,
		shipmentID:    shipmentID,
		shipperID:     shipperID,
		proposed:      proposed,
		changes:       changes,
		changeReason:  changeReason,
		status:        StatusPending,
		isConstructed: true,
	}, nil
}

// RestoreModification reconstructs a modification from persistence. The diff
// is stored, not recomputed, because the shipment may have changed since.
func RestoreModification(
	id, shipmentID, shipperID kernel.UUID,
	proposed shipment.Details,
	changes map[string]shipment.FieldChange,
	changeReason string,
	status Status,
	resolved bool,
) (*Modification, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		shipperID.Validate(),
		proposed.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Modification{
		id:            id,
		shipmentID:    shipmentID,
		shipperID:     shipperID,
		proposed:      proposed,
		changes:       changes,
		changeReason:  changeReason,
		status:        status,
		resolved:      resolved,
		isConstructed: true,
	}, nil
}

// Validate ensures the modification was built through a constructor.
func (m *Modification) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrModificationIsNotConstructed
	}
	return nil
}

// ID returns the modification identifier.
func (m *Modification) ID() kernel.UUID {
	return m.id
}

// ShipmentID returns the parent shipment.
func (m *Modification) ShipmentID() kernel.UUID {
	return m.shipmentID
}

// ShipperID returns the requesting shipper.
func (m *Modification) ShipperID() kernel.UUID {
	return m.shipperID
}

// Proposed returns the full proposed detail set.
func (m *Modification) Proposed() shipment.Details {
	return m.proposed
}

// Changes returns the field-level diff recorded at request time.
func (m *Modification) Changes() map[string]shipment.FieldChange {
	out := make(map[string]shipment.FieldChange, len(m.changes))
	for k, v := range m.changes {
		out[k] = v
	}
	return out
}

// ChangeReason returns the shipper's stated reason, possibly empty.
func (m *Modification) ChangeReason() string {
	return m.changeReason
}

// Status returns the review status.
func (m *Modification) Status() Status {
	return m.status
}

// Resolved reports whether the broker already reviewed this modification.
func (m *Modification) Resolved() bool {
	return m.resolved
}

// Accept resolves the modification in the shipper's favor. The caller applies
// the proposed details to the shipment.
func (m *Modification) Accept() error {
	newStatus, err := m.status.resolve(StatusAccepted)
	if err != nil {
		return err
	}
	m.status = newStatus
	m.resolved = true
	return nil
}

// Reject resolves the modification leaving the shipment's details unchanged.
func (m *Modification) Reject() error {
	newStatus, err := m.status.resolve(StatusRejected)
	if err != nil {
		return err
	}
	m.status = newStatus
	m.resolved = true
	return nil
}
