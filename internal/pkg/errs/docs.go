// Package errs provides standardized error types for the dealership application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - PaymentError: For structural card-validation failures
//   - InventoryError / VehicleUnavailableError: For stock problems during checkout
//   - AuthorizationError: For requests the caller is not allowed to make
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// A few checkout conditions need no detail payload and are plain sentinels:
// ErrCartEmpty, ErrOrderNumberTaken, and ErrOrderNumberExhausted.
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
