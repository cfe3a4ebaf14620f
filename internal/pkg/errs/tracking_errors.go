package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrTrackingUnavailable is the sentinel for a tracking fetch that found
	// no delivery for the order. Not an error for control-flow purposes: the
	// reconciler maps it to the awaiting-assignment presentation state and
	// keeps polling.
	ErrTrackingUnavailable = errors.New("delivery tracking is unavailable")

	// ErrLocationUnavailable is the sentinel for a failed device location
	// sample (permission denied, no signal). Surfaced to the user but never
	// stops the opposing polling loop.
	ErrLocationUnavailable = errors.New("device location is unavailable")
)

// TrackingUnavailableError reports that no delivery tracking exists for an
// order. The cause distinguishes a backend not-found from a transient
// failure, though both currently degrade the same way.
type TrackingUnavailableError struct {
	OrderID int64
	Cause   error
}

// NewTrackingUnavailableError creates a TrackingUnavailableError for the order.
func NewTrackingUnavailableError(orderID int64, cause error) *TrackingUnavailableError {
	return &TrackingUnavailableError{OrderID: orderID, Cause: cause}
}

func (e *TrackingUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("delivery tracking is unavailable: order is: %d (cause: %v)", e.OrderID, e.Cause))
	}
	return sanitize(fmt.Sprintf("delivery tracking is unavailable: order is: %d", e.OrderID))
}

// Unwrap exposes both the sentinel and the cause; the cause carries the
// not-found-vs-outage distinction.
func (e *TrackingUnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrTrackingUnavailable}
	}
	return []error{ErrTrackingUnavailable, e.Cause}
}

// LocationUnavailableError reports a failed device location sample.
type LocationUnavailableError struct {
	Cause error
}

// NewLocationUnavailableError creates a LocationUnavailableError wrapping the
// sampling failure.
func NewLocationUnavailableError(cause error) *LocationUnavailableError {
	return &LocationUnavailableError{Cause: cause}
}

func (e *LocationUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("device location is unavailable (cause: %v)", e.Cause))
	}
	return "device location is unavailable"
}

// Unwrap exposes both the sentinel and the cause.
func (e *LocationUnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrLocationUnavailable}
	}
	return []error{ErrLocationUnavailable, e.Cause}
}
