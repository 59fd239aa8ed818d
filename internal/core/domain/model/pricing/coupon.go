package pricing

import (
	"errors"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCouponIsNotConstructed is returned when a Coupon was not created through
// the NewCoupon constructor.
var ErrCouponIsNotConstructed = errors.New("Coupon must be created via NewCoupon constructor")

// NormalizeCode converts a customer-entered coupon code to its canonical
// form. Codes are matched case-insensitively by normalizing to uppercase
// before lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Coupon is a customer-entered discount code applied at checkout.
//
// A percentage coupon discounts the cart subtotal by value percent, capped
// by maxDiscount when set. A fixed coupon discounts by a flat amount. Either
// way the discount is clamped to [0, subtotal]. Eligibility requires the
// coupon to be active and the subtotal to reach minOrderValue when one is
// set.
type Coupon struct {
	code          string
	discountType  DiscountType
	value         decimal.Decimal
	minOrderValue kernel.Money
	maxDiscount   kernel.Money
	isActive      bool

	guard guard.ConstructorGuard
}

// NewCoupon creates a validated coupon. The code is normalized to uppercase.
// A zero minOrderValue means no minimum; a zero maxDiscount means the
// percentage discount is uncapped.
func NewCoupon(
	code string,
	discountType DiscountType,
	value decimal.Decimal,
	minOrderValue kernel.Money,
	maxDiscount kernel.Money,
	isActive bool,
) (Coupon, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return Coupon{}, errs.NewValueIsRequiredError("coupon code")
	}
	if err := discountType.Validate(); err != nil {
		return Coupon{}, err
	}
	if err := validateDiscountValue(discountType, value); err != nil {
		return Coupon{}, err
	}

	return Coupon{
		code:          normalized,
		discountType:  discountType,
		value:         value,
		minOrderValue: minOrderValue,
		maxDiscount:   maxDiscount,
		isActive:      isActive,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the coupon was created through the constructor.
func (c Coupon) Validate() error {
	return c.guard.Validate(ErrCouponIsNotConstructed)
}

// Code returns the normalized coupon code.
func (c Coupon) Code() string { return c.code }

// DiscountType returns how the coupon value is interpreted.
func (c Coupon) DiscountType() DiscountType { return c.discountType }

// Value returns the percentage or flat discount value.
func (c Coupon) Value() decimal.Decimal { return c.value }

// MinOrderValue returns the minimum subtotal for eligibility; zero means none.
func (c Coupon) MinOrderValue() kernel.Money { return c.minOrderValue }

// MaxDiscount returns the cap on a percentage discount; zero means uncapped.
func (c Coupon) MaxDiscount() kernel.Money { return c.maxDiscount }

// IsActive reports whether the coupon can currently be applied.
func (c Coupon) IsActive() bool { return c.isActive }

// CheckEligibility returns nil when the coupon can be applied to a cart with
// the given subtotal, or a CouponIneligibleError naming the failed rule. No
// discount is applied for ineligible coupons; the caller is notified instead.
func (c Coupon) CheckEligibility(subtotal kernel.Money) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.isActive {
		return errs.NewCouponIneligibleError(c.code, "coupon is inactive")
	}
	if !c.minOrderValue.IsZero() && subtotal.LessThan(c.minOrderValue) {
		return errs.NewCouponIneligibleError(
			c.code,
			"subtotal "+subtotal.String()+" is below minimum order value "+c.minOrderValue.String(),
		)
	}
	return nil
}

// DiscountOn computes the coupon discount for a subtotal, capped and
// clamped per the coupon rules. Eligibility is checked separately via
// CheckEligibility.
func (c Coupon) DiscountOn(subtotal kernel.Money) kernel.Money {
	return discountOn(subtotal, c.discountType, c.value, c.maxDiscount)
}
