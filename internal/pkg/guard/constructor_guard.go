// Package guard provides the constructor guard used by commands and value objects
// to reject zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it as a private
// field, set it with NewConstructorGuard in the constructor and check it in Validate.
//
// Example:
//
//	var ErrSeedOrderCommandIsNotConstructed = errors.New("SeedOrderCommand must be created via NewSeedOrderCommand")
//
//	type SeedOrderCommand struct {
//	    order *order.Order
//	    guard guard.ConstructorGuard
//	}
//
//	func (c SeedOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrSeedOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) if the guard
// is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
