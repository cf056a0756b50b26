// Package notification defines the notification intent: a description of a
// message that should reach someone, decoupled from how it gets delivered.
package notification

import (
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// Audience selects who an intent targets.
type Audience string

const (
	// AudienceAdmins is a broadcast to the operations team.
	AudienceAdmins Audience = "admins"

	// AudienceShipper targets the single shipper identified by ShipperID.
	AudienceShipper Audience = "shipper"
)

// Templates name the message to render on the receiving side. The data map
// carries whatever the template needs.
const (
	TemplateShipmentRequested     = "shipment.requested"
	TemplateShipmentRejected      = "shipment.rejected"
	TemplateOfferIssued           = "offer.issued"
	TemplateOfferUpdated          = "offer.updated"
	TemplateOfferAccepted         = "offer.accepted"
	TemplateOfferRejected         = "offer.rejected"
	TemplateModificationRequested = "modification.requested"
	TemplateModificationReviewed  = "modification.reviewed"
	TemplatePaymentRequested      = "payment.requested"
	TemplatePaymentProofUploaded  = "payment.proof_uploaded"
	TemplatePaymentVerified       = "payment.verified"
	TemplateDriverAssigned        = "progress.driver_assigned"
	TemplateProgressUpdated       = "progress.updated"
	TemplateShipmentAdvanced      = "shipment.advanced"
)

// Intent is what a handler derives from a state change. It is persisted to
// the outbox in the same transaction as the change and delivered later.
type Intent struct {
	audience  Audience
	shipperID kernel.UUID
	template  string
	data      map[string]any
}

// NewAdminBroadcast builds an intent for the operations team.
func NewAdminBroadcast(template string, data map[string]any) (Intent, error) {
	if template == "" {
		return Intent{}, errs.NewValueIsRequiredError("template")
	}
	return Intent{audience: AudienceAdmins, template: template, data: data}, nil
}

// NewShipperIntent builds an intent for a single shipper.
func NewShipperIntent(shipperID kernel.UUID, template string, data map[string]any) (Intent, error) {
	if err := shipperID.Validate(); err != nil {
		return Intent{}, err
	}
	if template == "" {
		return Intent{}, errs.NewValueIsRequiredError("template")
	}
	return Intent{audience: AudienceShipper, shipperID: shipperID, template: template, data: data}, nil
}

// Audience returns who the intent targets.
func (i Intent) Audience() Audience { return i.audience }

// ShipperID returns the target shipper. Only meaningful for AudienceShipper.
func (i Intent) ShipperID() kernel.UUID { return i.shipperID }

// Template returns the message template name.
func (i Intent) Template() string { return i.template }

// Data returns the template payload.
func (i Intent) Data() map[string]any { return i.data }
