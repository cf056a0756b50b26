package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel for all not-found errors.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsRequired is the sentinel for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid is the sentinel for malformed or out-of-domain values.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrForbidden is the sentinel for role or ownership violations.
	ErrForbidden = errors.New("operation is forbidden")

	// ErrInvalidState is the sentinel for actions that are illegal in the
	// entity's current status. Already-resolved and already-exists violations
	// are reported through this sentinel as well.
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrStoreUnavailable is the sentinel for persistence-layer failures.
	// It is the only error kind eligible for caller-side retry.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// sanitize flattens newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError reports that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a value that is present but not acceptable.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ForbiddenError reports a role or ownership mismatch: the caller is
// authenticated but not allowed to act on the resource.
type ForbiddenError struct {
	Subject  string
	Resource string
	Cause    error
}

func NewForbiddenError(subject, resource string) *ForbiddenError {
	return &ForbiddenError{Subject: subject, Resource: resource}
}

func NewForbiddenErrorWithCause(subject, resource string, cause error) *ForbiddenError {
	return &ForbiddenError{Subject: subject, Resource: resource, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s may not act on %s (cause: %s)",
			ErrForbidden, e.Subject, sanitize(e.Resource), e.Cause)
	}
	return fmt.Sprintf("%s: %s may not act on %s", ErrForbidden, e.Subject, sanitize(e.Resource))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidStateError reports an action that the entity's current status does
// not permit.
type InvalidStateError struct {
	Entity  string
	Current string
	Action  string
	Cause   error
}

func NewInvalidStateError(entity, current, action string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Current: current, Action: action}
}

func NewInvalidStateErrorWithCause(entity, current, action string, cause error) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Current: current, Action: action, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s in status %s does not allow %s (cause: %s)",
			ErrInvalidState, e.Entity, e.Current, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s in status %s does not allow %s",
		ErrInvalidState, e.Entity, e.Current, e.Action)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// StoreUnavailableError wraps a persistence failure. The operation either
// fully applied or fully rolled back; no partial writes survive.
type StoreUnavailableError struct {
	Op    string
	Cause error
}

func NewStoreUnavailableError(op string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Op: op, Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStoreUnavailable, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreUnavailable, e.Op)
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}
