package payment

import (
	"fmt"

	"freightflow/internal/pkg/errs"
)

// Status is the payment sub-state machine:
//
//	PENDING ──(proof uploaded)──> IN_VERIFICATION ──> COMPLETED
//	                                              └─> FAILED
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota

	// StatusPending awaits the shipper's transfer proof.
	StatusPending

	// StatusInVerification awaits the broker's verdict on the proof.
	StatusInVerification

	// StatusCompleted is terminal: the transfer was verified.
	StatusCompleted

	// StatusFailed is terminal: the proof was rejected.
	StatusFailed
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusInVerification: "IN_VERIFICATION",
		StatusCompleted:      "COMPLETED",
		StatusFailed:         "FAILED",
	}
}

func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInVerification, StatusCompleted, StatusFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
}

// IsTerminal reports whether the payment reached COMPLETED or FAILED.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// BeginVerification transitions PENDING to IN_VERIFICATION.
func (s Status) BeginVerification() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidStateError("payment", s.String(), "upload proof")
	}
	return StatusInVerification, nil
}

// Resolve transitions IN_VERIFICATION to COMPLETED or FAILED.
func (s Status) Resolve(approved bool) (Status, error) {
	if s != StatusInVerification {
		return StatusUnknown, errs.NewInvalidStateError("payment", s.String(), "verify")
	}
	if approved {
		return StatusCompleted, nil
	}
	return StatusFailed, nil
}
