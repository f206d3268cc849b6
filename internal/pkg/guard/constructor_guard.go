// Package guard provides the ConstructorGuard pattern used by commands and
// value objects to detect zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. A zero-value struct fails Validate,
// so a command that skipped its constructor (and therefore its validation)
// cannot reach a handler.
//
// Example usage:
//
//	var ErrPatchNotConstructed = errors.New("Patch must be created via NewPatch")
//
//	type Patch struct {
//	    fields map[string]string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPatch(fields map[string]string) (Patch, error) {
//	    if len(fields) == 0 {
//	        return Patch{}, errors.New("fields are required")
//	    }
//	    return Patch{fields: fields, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Patch) Validate() error {
//	    return p.guard.Validate(ErrPatchNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was built via its constructor.
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
