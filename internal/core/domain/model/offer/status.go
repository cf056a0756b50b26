package offer

import (
	"fmt"

	"freightflow/internal/pkg/errs"
)

// Status is the offer resolution state.
//
//	PENDING ──> ACCEPTED   (shipper accepts; terminal)
//	PENDING ──> REJECTED   (shipper declines; terminal, offer superseded)
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota

	// StatusPending awaits the shipper's response; terms may still change.
	StatusPending

	// StatusAccepted is terminal; the parent shipment was confirmed.
	StatusAccepted

	// StatusRejected is terminal; the broker may re-issue a fresh offer.
	StatusRejected
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "UNKNOWN",
		StatusPending:  "PENDING",
		StatusAccepted: "ACCEPTED",
		StatusRejected: "REJECTED",
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
	if s != StatusPending && s != StatusAccepted && s != StatusRejected {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid offer status", s))
	}
	return nil
}

// IsResolved reports whether the offer reached a terminal state.
func (s Status) IsResolved() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Accept transitions PENDING to ACCEPTED.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidStateError("offer", s.String(), "accept")
	}
	return StatusAccepted, nil
}

// Reject transitions PENDING to REJECTED.
func (s Status) Reject() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidStateError("offer", s.String(), "reject")
	}
	return StatusRejected, nil
}
