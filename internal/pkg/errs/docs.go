// Package errs provides the standardized error types used across the
// freight-booking application.
//
// Every error kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The transport layer maps each sentinel to a response code, so handlers and
// domain code never deal with HTTP concerns directly.
package errs
