// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the system surfaces:
//   - ObjectNotFoundError: a referenced order, user or catalog item is absent
//   - ValueIsInvalidError / ValueIsRequiredError: bad or missing input
//   - NotAuthorizedError: role or ownership mismatch
//   - StateConflictError: an order state does not permit the requested transition
//   - ConcurrencyConflictError: an optimistic version check failed
//   - VerificationFailedError: the payment gateway could not confirm a transaction
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter maps the sentinels onto response status codes; everything
// below the adapter reasons about failures with errors.Is alone.
package errs
