// Package guard provides a defensive construction check for value objects,
// entities and command/query objects. Embedding a ConstructorGuard in a struct
// makes zero-value instances distinguishable from instances built through the
// designated constructor, so Validate methods can reject objects that skipped
// their invariant checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// built through its constructor and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor function. The zero value always fails validation.
//
// Example usage:
//
//	type PostJobCommand struct {
//	    title string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPostJobCommand(title string) (PostJobCommand, error) {
//	    if title == "" {
//	        return PostJobCommand{}, errs.NewValueIsRequiredError("title")
//	    }
//	    return PostJobCommand{title: title, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PostJobCommand) Validate() error {
//	    return c.guard.Validate(ErrPostJobCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it only from the object's constructor.
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
