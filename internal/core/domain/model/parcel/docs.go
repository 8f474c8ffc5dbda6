// Package parcel provides the package record of a quote session.
//
// The package includes:
//   - Package: weight, width, height and length of one package, plus the
//     derived total dimensions (width + height + length)
//
// Key business rules:
//   - All measures are non-negative finite numbers
//   - Dimensions are replaced as a unit, never one field at a time
//   - A quote may only be computed once weight and dimensions are both set
package parcel
