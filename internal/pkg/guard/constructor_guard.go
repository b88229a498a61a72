package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, commands, and queries are only
// created through their designated constructor functions. A zero-value struct
// embedding a ConstructorGuard fails validation, which lets handlers reject
// objects that bypassed construction-time invariant checks.
//
// Example usage:
//
//	type SubmitOrderCommand struct {
//	    itemName string
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewSubmitOrderCommand(itemName string, quantity int) (SubmitOrderCommand, error) {
//	    // ... validation ...
//	    return SubmitOrderCommand{itemName: itemName, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SubmitOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
// Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// objects it returns validationError, or ErrDefaultConstructorGuard when
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
