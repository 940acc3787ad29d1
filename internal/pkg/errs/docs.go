// Package errs provides standardized error types for the job-board application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error type per taxonomy kind:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside an allowed interval
//   - ObjectNotFoundError: For when an object cannot be found
//   - UnauthorizedError: For when a request lacks a sufficient principal
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP layer maps these kinds onto response status codes through errors.Is,
// so every layer below it reports failures by returning one of these types
// rather than writing a response directly.
package errs
