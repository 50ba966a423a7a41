// Package guard implements the constructor guard pattern used by domain
// objects, commands and queries to reject zero-value instances.
//
// A struct embeds a ConstructorGuard and arms it inside its constructor.
// Validate then distinguishes properly constructed instances from ones that
// were created by direct struct initialization, which would bypass the
// constructor's invariant checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its owner went through a constructor.
// The zero value is "not constructed" and fails Validate.
//
// Example:
//
//	type MenuItem struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewMenuItem(name string) (MenuItem, error) {
//	    if name == "" {
//	        return MenuItem{}, errors.New("name is required")
//	    }
//	    return MenuItem{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m MenuItem) Validate() error {
//	    return m.guard.Validate(ErrMenuItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns an armed guard. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero-value guards it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
