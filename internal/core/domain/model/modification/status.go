package modification

import (
	"fmt"

	"freightflow/internal/pkg/errs"
)

// Status is the review state of a modification request. The legacy records
// used lowercase strings; the persisted representation keeps them.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota

	// StatusPending awaits broker review.
	StatusPending

	// StatusAccepted is terminal; the proposal was applied to the shipment.
	StatusAccepted

	// StatusRejected is terminal; the shipment was left unchanged.
	StatusRejected
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusAccepted: "accepted",
		StatusRejected: "rejected",
	}
}

func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusAccepted && s != StatusRejected {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid modification status", s))
	}
	return nil
}

// resolve moves PENDING to the given terminal state.
func (s Status) resolve(target Status) (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidStateError("modification", s.String(),
			fmt.Sprintf("resolve as %s", target))
	}
	if target != StatusAccepted && target != StatusRejected {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a terminal modification status", target))
	}
	return target, nil
}
