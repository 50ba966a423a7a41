package kernel

import (
	"fmt"
	"math"

	"faithcafe/internal/pkg/errs"
)

// Money is a non-negative monetary amount in the café's single currency.
//
// Internal arithmetic keeps full floating precision; rounding to two
// decimals happens only at the display and serialization edges via Round2.
// The zero value is a valid zero amount.
type Money struct {
	amount float64
}

// NewMoney creates a Money value. Negative or non-finite amounts are invalid.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the raw amount at full precision.
func (m Money) Amount() float64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MulInt returns the amount multiplied by a quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount * float64(quantity)}
}

// Round2 returns the amount rounded to two decimal places for display.
func (m Money) Round2() float64 {
	return math.Round(m.amount*100) / 100
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String formats the amount with two decimals.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Round2())
}
