// Package actor models the already-authenticated caller identity handed in by
// the dispatch layer. The core trusts it completely and only performs the
// role and ownership checks defined by the lifecycle rules.
package actor

import (
	"fmt"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// Role is the kind of party acting on a shipment.
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota

	// RoleShipper is the owner of shipments: requests them, responds to
	// offers, raises modifications, uploads payment proofs.
	RoleShipper

	// RoleAdmin is the broker side: issues offers, reviews modifications,
	// manages payments and operational progress.
	RoleAdmin
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleShipper: "shipper",
		RoleAdmin:   "admin",
	}
}

// RoleFromString maps the wire representation ("shipper", "admin") to a Role.
func RoleFromString(s string) (Role, error) {
	for role, str := range roleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r != RoleShipper && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the caller identity: role plus subject id.
type Actor struct {
	role      Role
	subjectID kernel.UUID
}

// NewActor builds a validated Actor.
func NewActor(role Role, subjectID kernel.UUID) (Actor, error) {
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if err := subjectID.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{role: role, subjectID: subjectID}, nil
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// SubjectID returns the actor's own identifier (shipper id or admin id).
func (a Actor) SubjectID() kernel.UUID {
	return a.subjectID
}

// IsAdmin reports whether the actor acts on the broker side.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// IsShipper reports whether the actor acts as a shipper.
func (a Actor) IsShipper() bool {
	return a.role == RoleShipper
}

// Validate rejects zero-value actors.
func (a Actor) Validate() error {
	if err := a.role.Validate(); err != nil {
		return err
	}
	return a.subjectID.Validate()
}

// Owns reports whether the actor is the shipper identified by shipperID.
func (a Actor) Owns(shipperID kernel.UUID) bool {
	return a.role == RoleShipper && a.subjectID.IsEqual(shipperID)
}
