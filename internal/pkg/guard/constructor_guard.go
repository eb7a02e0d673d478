// Package guard implements the constructor guard pattern used by the
// domain model. Embedding a ConstructorGuard in a value object lets its
// Validate method distinguish instances built through the designated
// constructor from zero-value structs, so invariants established at
// construction time cannot be bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does
// not supply a more specific error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether an object was created through its
// designated constructor. The zero value fails validation.
//
// Example:
//
//	type Pincode struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPincode(value string) (Pincode, error) {
//	    // ... validate value ...
//	    return Pincode{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Pincode) Validate() error {
//	    return p.guard.Validate(ErrPincodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it only inside constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
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
