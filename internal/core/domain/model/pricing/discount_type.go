package pricing

import (
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DiscountType identifies how a coupon or offer value is interpreted.
type DiscountType int

const (
	// TypeUnknown represents an invalid or undefined discount type.
	TypeUnknown DiscountType = iota

	// TypePercentage interprets the value as a percentage of the base amount.
	TypePercentage

	// TypeFixed interprets the value as a flat currency amount.
	TypeFixed
)

// String returns the human-readable name of the discount type.
func (t DiscountType) String() string {
	switch t {
	case TypePercentage:
		return "percentage"
	case TypeFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Validate checks if the DiscountType is one of the defined values.
func (t DiscountType) Validate() error {
	if t != TypePercentage && t != TypeFixed {
		return errs.NewValueIsInvalidErrorWithCause("discount type", fmt.Errorf("%d is not a valid discount type", t))
	}
	return nil
}

// validateDiscountValue checks a discount value against its type: the value
// must be positive, and percentages cannot exceed 100.
func validateDiscountValue(t DiscountType, value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("discount value", fmt.Errorf("%s is not greater than 0", value))
	}
	if t == TypePercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError("discount percentage", value.String(), "0", "100")
	}
	return nil
}

// hundred is the divisor for percentage discounts.
var hundred = decimal.NewFromInt(100)

// discountOn computes the discount a type/value pair yields on a base
// amount. A percentage discount is capped by maxDiscount when maxDiscount
// is non-zero; the result is always clamped to [0, base] so a discount can
// never push an amount negative.
func discountOn(base kernel.Money, t DiscountType, value decimal.Decimal, maxDiscount kernel.Money) kernel.Money {
	var raw decimal.Decimal
	switch t {
	case TypePercentage:
		raw = base.Amount().Mul(value).Div(hundred)
	case TypeFixed:
		raw = value
	default:
		return kernel.ZeroMoney()
	}

	if raw.IsNegative() {
		return kernel.ZeroMoney()
	}

	discount, err := kernel.NewMoney(raw)
	if err != nil {
		return kernel.ZeroMoney()
	}

	if t == TypePercentage && !maxDiscount.IsZero() {
		discount = discount.Min(maxDiscount)
	}

	return discount.Min(base)
}
