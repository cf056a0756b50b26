// Package payment contains the Payment aggregate: one requested or completed
// money transfer tied to a shipment. The broker raises the request, the
// shipper uploads a transfer proof, and the broker verifies it.
package payment

import (
	"errors"
	"fmt"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned for zero-value instances.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Kind distinguishes the advance installment from the final settlement.
type Kind int

const (
	// KindUnknown catches uninitialized values.
	KindUnknown Kind = iota

	// KindAdvance is the up-front installment requested at confirmation.
	KindAdvance

	// KindFinal is the settlement requested around delivery.
	KindFinal
)

func kindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "UNKNOWN",
		KindAdvance: "ADVANCE",
		KindFinal:   "FINAL",
	}
}

// KindFromString maps the wire representation ("ADVANCE", "FINAL") to a Kind.
func KindFromString(s string) (Kind, error) {
	for k, str := range kindStrings() {
		if k != KindUnknown && str == s {
			return k, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("paymentType",
		fmt.Errorf("%q is not a known payment type", s))
}

func (k Kind) String() string {
	if s, ok := kindStrings()[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate rejects KindUnknown and out-of-range values.
func (k Kind) Validate() error {
	if k != KindAdvance && k != KindFinal {
		return errs.NewValueIsInvalidErrorWithCause("paymentType",
			fmt.Errorf("%d is not a valid payment type", k))
	}
	return nil
}

// Payment tracks one transfer through PENDING -> IN_VERIFICATION ->
// {COMPLETED, FAILED}.
//
// Invariants:
//   - a proof may only be attached while PENDING
//   - verification is only legal while IN_VERIFICATION
//   - COMPLETED and FAILED are immutable
type Payment struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	shipperID  kernel.UUID
	kind       Kind
	amount     float64
	toAccount  string
	proofRef   string
	status     Status

	isConstructed bool
}

// NewPayment creates a PENDING payment request. toAccount is the broker's
// destination-account descriptor shown to the shipper.
func NewPayment(
	id, shipmentID, shipperID kernel.UUID,
	kind Kind,
	amount float64,
	toAccount string,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		shipperID.Validate(),
		kind.Validate(),
	); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than 0", amount))
	}
	if toAccount == "" {
		return nil, errs.NewValueIsRequiredError("toAccount")
	}

	return &Payment{
		id:            id,
		shipmentID:    shipmentID,
		shipperID:     shipperID,
		kind:          kind,
		amount:        amount,
		toAccount:     toAccount,
		status:        StatusPending,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id, shipmentID, shipperID kernel.UUID,
	kind Kind,
	amount float64,
	toAccount, proofRef string,
	status Status,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		shipperID.Validate(),
		kind.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		shipmentID:    shipmentID,
		shipperID:     shipperID,
		kind:          kind,
		amount:        amount,
		toAccount:     toAccount,
		proofRef:      proofRef,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the payment was built through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// ShipmentID returns the parent shipment.
func (p *Payment) ShipmentID() kernel.UUID { return p.shipmentID }

// ShipperID returns the paying shipper.
func (p *Payment) ShipperID() kernel.UUID { return p.shipperID }

// Kind returns ADVANCE or FINAL.
func (p *Payment) Kind() Kind { return p.kind }

// Amount returns the requested amount.
func (p *Payment) Amount() float64 { return p.amount }

// ToAccount returns the destination-account descriptor.
func (p *Payment) ToAccount() string { return p.toAccount }

// ProofRef returns the opaque proof-document reference, empty until uploaded.
func (p *Payment) ProofRef() string { return p.proofRef }

// Status returns the payment status.
func (p *Payment) Status() Status { return p.status }

// AttachProof records the shipper's transfer proof and moves the payment into
// verification. Legal only while PENDING.
func (p *Payment) AttachProof(proofRef string) error {
	if proofRef == "" {
		return errs.NewValueIsRequiredError("proofRef")
	}
	newStatus, err := p.status.BeginVerification()
	if err != nil {
		return err
	}

	p.proofRef = proofRef
	p.status = newStatus
	return nil
}

// Verify resolves an in-verification payment as COMPLETED or FAILED.
func (p *Payment) Verify(approved bool) error {
	newStatus, err := p.status.Resolve(approved)
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}
