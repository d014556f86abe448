// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the lifecycle failure classes:
//   - ObjectAlreadyExistsError: an order was seeded twice
//   - ObjectNotFoundError: an order, shipment or document is unknown
//   - InvalidTransitionError: an illegal status jump or regression
//   - PartialCommitError: a unit of related writes could not be committed consistently
//
// and for input validation:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
