package shipment

import (
	"fmt"

	"freightflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// Consolidated state machine:
//
//	REQUESTED ──(offer sent)──────────> OFFER_SENT
//	REQUESTED ──(modification)────────> MODIFICATION_REQUESTED
//	REQUESTED ──(rejected by broker)──> REJECTED            (terminal)
//	OFFER_SENT ──(modification)───────> MODIFICATION_REQUESTED
//	OFFER_SENT ──(offer accepted)─────> CONFIRMED
//	OFFER_SENT ──(offer rejected)─────> REQUESTED
//	MODIFICATION_REQUESTED ──(review)─> re-derived from offer state
//	CONFIRMED ──(execution starts)────> IN_TRANSIT
//	IN_TRANSIT ──(delivered)──────────> COMPLETED           (terminal)
//
// CONFIRMED and later states are terminal with respect to offer and
// modification actions; only payment and progress actions apply beyond.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusRequested is the initial state: the shipper has filed the
	// request and no offer is outstanding.
	StatusRequested

	// StatusOfferSent means a PENDING offer is awaiting the shipper.
	StatusOfferSent

	// StatusModificationRequested means a pending modification is awaiting
	// broker review; offer actions are suspended meanwhile.
	StatusModificationRequested

	// StatusConfirmed means the shipper accepted the offer; cost and dates
	// are fixed and the operational progress log exists.
	StatusConfirmed

	// StatusInTransit means the cargo is moving.
	StatusInTransit

	// StatusCompleted is terminal: the shipment was delivered.
	StatusCompleted

	// StatusRejected is terminal: the broker declined the request. The
	// record is retained for audit.
	StatusRejected
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:               "UNKNOWN",
		StatusRequested:             "REQUESTED",
		StatusOfferSent:             "OFFER_SENT",
		StatusModificationRequested: "MODIFICATION_REQUESTED",
		StatusConfirmed:             "CONFIRMED",
		StatusInTransit:             "IN_TRANSIT",
		StatusCompleted:             "COMPLETED",
		StatusRejected:              "REJECTED",
	}
}

// transitions is the single authority on which status changes are legal.
// A status missing from the map allows no transitions at all.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		StatusRequested:             {StatusOfferSent, StatusModificationRequested, StatusRejected},
		StatusOfferSent:             {StatusModificationRequested, StatusConfirmed, StatusRequested},
		StatusModificationRequested: {StatusRequested, StatusOfferSent, StatusConfirmed},
		StatusConfirmed:             {StatusInTransit},
		StatusInTransit:             {StatusCompleted},
	}
}

// String returns the persisted representation, e.g. "OFFER_SENT".
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// CanTransitionTo consults the transition table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the table permits it, or an InvalidState
// error naming the current status and the attempted target.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(next) {
		return StatusUnknown, errs.NewInvalidStateError("shipment", s.String(),
			fmt.Sprintf("transition to %s", next))
	}
	return next, nil
}

// NegotiationOpen reports whether offer and modification actions still apply.
func (s Status) NegotiationOpen() bool {
	return s == StatusRequested || s == StatusOfferSent || s == StatusModificationRequested
}
