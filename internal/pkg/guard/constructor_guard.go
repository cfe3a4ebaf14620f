// Package guard provides a construction marker for value objects and
// entities. Embedding a ConstructorGuard in a struct makes it possible to
// detect whether the struct was created through its designated constructor or
// left as a zero value, which keeps domain objects from being used before
// their invariants were established.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is validated and no specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// an unconstructed guard and fails validation.
//
// Example:
//
//	type Draft struct {
//	    total decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func NewDraft(total decimal.Decimal) Draft {
//	    return Draft{total: total, guard: guard.NewConstructorGuard()}
//	}
//
//	func (d Draft) Validate() error {
//	    return d.guard.Validate(ErrDraftIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as constructed.
// Call it inside the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was built via its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
