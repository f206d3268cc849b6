package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"lytefood/internal/pkg/errs"
)

// TVARate is the fixed value-added-tax rate applied to every order subtotal.
var TVARate = decimal.RequireFromString("0.18")

// Money is an exact-decimal monetary amount. It is a value object: operations
// return new values and never mutate the receiver.
//
// Rounding is always round-half-up to two decimal places, applied at each
// pricing stage separately (subtotal -> tax, then subtotal + tax -> total),
// so totals reproduce exactly what the pricing invariant promises:
//
//	total == round2(round2(subtotal * 0.18) + subtotal)
type Money struct {
	amount decimal.Decimal
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromDecimal wraps an existing decimal amount.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// NewMoneyFromString parses a decimal string such as "10.00".
// Returns an error for anything the decimal parser rejects.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: d}, nil
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns m multiplied by a whole quantity.
func (m Money) MulInt(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

// Round2 returns m rounded to two decimal places, half away from zero.
// Amounts are never negative in this domain, so this is round-half-up.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// TVA returns the tax on m: round2(m * TVARate).
func (m Money) TVA() Money {
	return Money{amount: m.amount.Mul(TVARate).Round(2)}
}

// WithTVA returns round2(m + m.TVA()), the gross total for a net subtotal m.
func (m Money) WithTVA() Money {
	return m.Add(m.TVA()).Round2()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual compares two amounts by numeric value, ignoring exponent
// representation, so Money from "10" equals Money from "10.00".
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount with exactly two decimal places, which is also
// the wire representation.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

var _ fmt.Stringer = Money{}
