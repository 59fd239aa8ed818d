package kernel

import (
	"fmt"

	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for non-negative monetary amounts. It wraps
// github.com/shopspring/decimal so that subtotals, discounts, shipping
// charges, and totals are computed exactly, with rounding to two decimal
// places applied only at presentation time.
//
// The zero value of Money is zero currency units and is valid. Negative
// amounts cannot be constructed; subtraction that would go below zero
// returns an error. Money is immutable, every operation returns a new value.
//
// Example usage:
//
//	price, _ := kernel.NewMoneyFromString("499.99")
//	total := price.MulInt(2)
//	fmt.Println(total.Rounded2()) // "999.98"
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of zero currency units.
func ZeroMoney() Money {
	return Money{}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString creates a Money from a decimal string such as "499.99".
// Returns an error if the string does not parse or the amount is negative.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(d)
}

// NewMoneyFromInt creates a Money from a whole number of currency units.
// Returns an error if the value is negative.
func NewMoneyFromInt(v int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(v))
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
// Returns an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount.Sub(other.amount))
}

// SubFloored returns the difference of two amounts floored at zero.
// Used where the business rule is "never below zero" rather than "must not
// go below zero", such as the final order total.
func (m Money) SubFloored(other Money) Money {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}
	}
	return Money{amount: result}
}

// MulInt returns the amount multiplied by a quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Min returns the smaller of two amounts.
func (m Money) Min(other Money) Money {
	if m.amount.GreaterThan(other.amount) {
		return other
	}
	return m
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality, ignoring scale.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan reports whether m is strictly larger than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Rounded2 returns the amount rounded to two decimal places as a string.
// This is the presentation form; internal computations keep full precision.
func (m Money) Rounded2() string {
	return m.amount.StringFixed(2)
}

// String returns the exact decimal representation of the amount.
// Implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.String()
}

// Validate checks the Money invariant: the amount is never negative.
// Constructed values always pass; this exists for symmetry with the other
// value objects when reconstructing from persistence.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%s is negative", m.amount.String()),
		)
	}
	return nil
}
