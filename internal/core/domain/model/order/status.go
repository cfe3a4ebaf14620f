package order

import (
	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Placed ──> Confirmed ──> Preparing ──> OutForDelivery ──> Delivered
//	   │            │            │               │
//	   └────────────┴────────────┴───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no outgoing transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned by the backend on creation.
	Placed

	// Confirmed indicates the restaurant accepted the order.
	Confirmed

	// Preparing indicates the restaurant is preparing the food.
	Preparing

	// OutForDelivery indicates a driver is carrying the order.
	OutForDelivery

	// Delivered is the successful terminal state.
	Delivered

	// Cancelled is the abort terminal state, reachable from every
	// non-terminal state.
	Cancelled
)

// getStatusStrings returns the wire representation of every status,
// including Unknown for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Placed:         "PLACED",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getTransitions returns the full transition table. Terminal states map to
// empty sets; statuses absent from the table are invalid.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Placed:         {Confirmed, Cancelled},
		Confirmed:      {Preparing, Cancelled},
		Preparing:      {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
		Delivered:      {},
		Cancelled:      {},
	}
}

// StatusFromString parses the wire representation ("PLACED", "CONFIRMED", ...)
// into a Status. Unrecognized strings yield Unknown and an error; callers in
// polling paths treat this as a data-integrity signal rather than a crash.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status " + s)
}

// String returns the wire name of the status. Implements fmt.Stringer and is
// safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether the status is one of the six defined states.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidError("status " + s.String())
	}
	return nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowedNext returns the statuses reachable from s in one transition.
// The function is total: terminal and unknown statuses map to the empty set.
// An unknown input set being empty doubles as a data-integrity signal for
// statuses that arrived corrupted from persistence or the wire.
func AllowedNext(s Status) []Status {
	next, ok := getTransitions()[s]
	if !ok {
		return []Status{}
	}
	return next
}

// ValidateTransition reports whether from -> to is a legal transition,
// equivalent to membership of to in AllowedNext(from).
func ValidateTransition(from, to Status) bool {
	for _, allowed := range AllowedNext(from) {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition from s to next.
// Returns the new status, or an InvalidTransitionError that the caller must
// log without sending the update upstream.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !ValidateTransition(s, next) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return next, nil
}
