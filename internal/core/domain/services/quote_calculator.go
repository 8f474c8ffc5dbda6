package services

import (
	"packexpress/internal/core/domain/model/parcel"
	"packexpress/internal/core/domain/model/quote"
)

// QuoteDivisor scales width × height × length × weight down to a price.
const QuoteDivisor = 100.0

// QuoteCalculator prices a package. It is a pure domain service.
type QuoteCalculator struct{}

// NewQuoteCalculator creates a new QuoteCalculator instance.
func NewQuoteCalculator() QuoteCalculator {
	return QuoteCalculator{}
}

// CalculateQuote returns (width × height × length × weight) / QuoteDivisor.
// The amount is not rounded; quote.Quote rounds only for display.
//
// Example:
//
//	// weight 10, dimensions 2 × 3 × 4
//	q, _ := services.NewQuoteCalculator().CalculateQuote(pkg)
//	fmt.Println(q) // 2.40
func (c QuoteCalculator) CalculateQuote(pkg *parcel.Package) (quote.Quote, error) {
	if err := pkg.Validate(); err != nil {
		return quote.Quote{}, err
	}

	if !pkg.IsComplete() {
		return quote.Quote{}, parcel.ErrPackageIsIncomplete
	}

	amount := (pkg.Width() * pkg.Height() * pkg.Length() * pkg.Weight()) / QuoteDivisor
	return quote.NewQuote(amount)
}
