// Package quote provides the shipping price computed at the end of a session.
package quote

import (
	"errors"
	"math"
	"strconv"

	"packexpress/internal/pkg/errs"
	"packexpress/internal/pkg/guard"
)

// ErrQuoteIsNotConstructed is returned when a Quote was not created through NewQuote.
var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")

// Quote is an immutable shipping price. The amount keeps full precision;
// rounding to cents happens only when the quote is displayed.
type Quote struct {
	amount float64
	guard  guard.ConstructorGuard
}

// NewQuote wraps a computed amount. The amount must be a non-negative finite number.
func NewQuote(amount float64) (Quote, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return Quote{}, errs.NewValueIsOutOfRangeError("quote", amount, 0, math.MaxFloat64)
	}

	return Quote{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Quote was created through NewQuote.
func (q Quote) Validate() error {
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

// Amount returns the unrounded price.
func (q Quote) Amount() float64 {
	return q.amount
}

// String formats the price with exactly two decimals, e.g. "2.40".
func (q Quote) String() string {
	return strconv.FormatFloat(q.amount, 'f', 2, 64)
}
