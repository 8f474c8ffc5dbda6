// Package services provides the stateless domain services of the quote calculator.
//
// The package includes:
//   - PackageValidator: checks weight and total dimensions against the shipping limits
//   - QuoteCalculator: prices a complete package record
//
// Both services are pure: they read the values they are given and never
// mutate them. Limits and the price formula are fixed at build time.
package services
