// Package commands contains the use cases that drive a quote session.
// Each command comes with a handler; handlers receive their collaborators
// through the small interfaces below so they can be replaced in tests.
package commands

import (
	"packexpress/internal/core/domain/model/parcel"
	"packexpress/internal/core/domain/model/quote"
)

type (
	// PackageValidator checks a package against the shipping limits.
	// A non-nil error is a business rule rejection.
	PackageValidator interface {
		ValidateWeight(weight float64) error
		ValidateDimensions(pkg *parcel.Package) error
	}

	// QuoteCalculator prices a complete package.
	QuoteCalculator interface {
		CalculateQuote(pkg *parcel.Package) (quote.Quote, error)
	}
)
