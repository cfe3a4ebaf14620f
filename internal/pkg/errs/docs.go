// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Beyond the generic validation errors, the package defines the checkout and
// tracking taxonomy of this system: EmptyCartError, SequenceStepFailureError,
// InvalidTransitionError, TrackingUnavailableError and LocationUnavailableError.
package errs
