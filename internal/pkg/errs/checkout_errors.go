package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart is the sentinel for a checkout over a cart with no valid
	// restaurant groups. Fatal to the checkout flow; the caller must send the
	// user back to cart review.
	ErrEmptyCart = errors.New("cart has no valid restaurant groups")

	// ErrSequenceStepFailed is the sentinel for a failed order submission
	// inside a multi-restaurant checkout. The failure is recoverable: a retry
	// resumes from the same group index.
	ErrSequenceStepFailed = errors.New("order sequence step failed")

	// ErrInvalidTransition is the sentinel for a status update that is not in
	// the allowed set for the order's current status. Treated as a
	// programming or data error; the update is never sent upstream.
	ErrInvalidTransition = errors.New("order status transition is not allowed")
)

// EmptyCartError reports that cart decomposition produced zero valid groups.
type EmptyCartError struct {
	UserID string
}

// NewEmptyCartError creates an EmptyCartError for the given user's cart.
func NewEmptyCartError(userID string) *EmptyCartError {
	return &EmptyCartError{UserID: userID}
}

func (e *EmptyCartError) Error() string {
	return sanitize(fmt.Sprintf("cart has no valid restaurant groups: user is: %s", e.UserID))
}

func (e *EmptyCartError) Unwrap() error {
	return ErrEmptyCart
}

// SequenceStepFailureError reports that submitting the order draft at the
// given zero-based group index failed. Earlier groups are checkpointed and
// later groups were never attempted.
type SequenceStepFailureError struct {
	Index        int
	RestaurantID string
	Cause        error
}

// NewSequenceStepFailureError creates a SequenceStepFailureError for the
// failed group.
func NewSequenceStepFailureError(index int, restaurantID string, cause error) *SequenceStepFailureError {
	return &SequenceStepFailureError{Index: index, RestaurantID: restaurantID, Cause: cause}
}

func (e *SequenceStepFailureError) Error() string {
	return sanitize(fmt.Sprintf("order sequence step failed: index is: %d, restaurant is: %s (cause: %v)",
		e.Index, e.RestaurantID, e.Cause))
}

// Unwrap exposes both the sentinel and the cause, so callers can match the
// failed-step condition and the underlying backend error in one chain.
func (e *SequenceStepFailureError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrSequenceStepFailed}
	}
	return []error{ErrSequenceStepFailed, e.Cause}
}

// InvalidTransitionError reports a status update targeting a state not in the
// allowed set for the current state.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// rejected transition.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("order status transition is not allowed: from is: %s, to is: %s", e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
