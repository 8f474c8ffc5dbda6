// Package kernel provides core domain primitives shared by the quote calculator.
//
// The package includes:
//   - UUID: A value object for session identifiers
//   - ParseMeasure: The parse-or-error conversion from a line of user input to a
//     non-negative package measure
//
// Parsing never panics; callers branch on the returned error.
package kernel
