package services

import (
	"freightflow/internal/core/domain/model/offer"
	"freightflow/internal/core/domain/model/shipment"
)

// StatusDeriver is a domain service that recomputes a shipment's negotiation
// status from the state of its current offer. It is used after a modification
// review resolves: the review pulled the shipment out of
// MODIFICATION_REQUESTED and the offer, if any, decides where it lands.
//
// Derivation rules:
//   - no offer        -> REQUESTED
//   - offer PENDING   -> OFFER_SENT
//   - offer ACCEPTED  -> CONFIRMED
//   - offer REJECTED  -> REQUESTED
type StatusDeriver struct{}

// NewStatusDeriver creates a new StatusDeriver instance.
func NewStatusDeriver() StatusDeriver {
	return StatusDeriver{}
}

// Derive returns the shipment status implied by the given offer. A nil offer
// means no offer was ever issued for the shipment.
func (d StatusDeriver) Derive(current *offer.Offer) shipment.Status {
	if current == nil {
		return shipment.StatusRequested
	}

	switch current.Status() {
	case offer.StatusPending:
		return shipment.StatusOfferSent
	case offer.StatusAccepted:
		return shipment.StatusConfirmed
	default:
		return shipment.StatusRequested
	}
}
