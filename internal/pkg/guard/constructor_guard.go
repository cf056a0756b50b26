// Package guard implements the constructor-guard pattern: value objects embed
// a ConstructorGuard so that zero-value instances, which bypassed their
// constructor and its validation, can be detected at use time.
package guard

import "errors"

// ErrNotConstructed is returned by Validate when no specific error is given
// and the guarded object was not built through its constructor.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes constructor-built objects from zero values.
// Embed it in a struct and initialize it with NewConstructorGuard inside the
// constructor; Validate then fails on any zero-value instance.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owning object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor,
// otherwise validationError (or ErrNotConstructed when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrNotConstructed
	}
	return validationError
}
