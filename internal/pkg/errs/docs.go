// Package errs provides standardized error types for the quote calculator.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value cannot be accepted (e.g. non-numeric input)
//   - ValueIsOutOfRangeError: For when a value exceeds a shipping limit
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
package errs
