package services

import (
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/pricing"
)

// Totals is the result of a pricing computation. The fields satisfy
// Total = Subtotal - Discount + ShippingCharge, floored at zero.
type Totals struct {
	Subtotal       kernel.Money
	Discount       kernel.Money
	ShippingCharge kernel.Money
	Total          kernel.Money
}

// PricingEngine is a pure domain service that computes the monetary totals
// for a cart or order snapshot. It holds only the shipping policy supplied
// by configuration and has no other state: calling ComputeTotals twice with
// identical inputs yields identical outputs and causes no side effects.
//
// Per-product offers are applied to the unit price when line items are
// built, before the engine sees them; the engine is responsible for the
// subtotal aggregation, the coupon discount, and the shipping charge.
//
// Example usage:
//
//	engine := services.NewPricingEngine(freeShippingThreshold, defaultShipping)
//	totals, err := engine.ComputeTotals(items, &coupon)
//	if errors.Is(err, errs.ErrCouponIneligible) {
//	    // Surface the rejection to the customer
//	}
type PricingEngine struct {
	freeShippingThreshold kernel.Money
	defaultShippingCharge kernel.Money
}

// NewPricingEngine creates a pricing engine with the configured shipping
// policy: orders with a subtotal at or above freeShippingThreshold ship
// free, everything else pays defaultShippingCharge.
func NewPricingEngine(freeShippingThreshold, defaultShippingCharge kernel.Money) PricingEngine {
	return PricingEngine{
		freeShippingThreshold: freeShippingThreshold,
		defaultShippingCharge: defaultShippingCharge,
	}
}

// ComputeTotals computes subtotal, discount, shipping charge, and total for
// a set of line items and an optional coupon.
//
// Rules:
//   - subtotal is the sum of line totals (unit price already offer-adjusted)
//   - an ineligible coupon fails the computation with a CouponIneligibleError
//     so the caller can notify the customer; no discount is silently dropped
//   - the coupon discount is capped by the coupon's max discount (percentage
//     type) and clamped to [0, subtotal]
//   - shipping is free at or above the threshold, flat otherwise
//   - total = subtotal - discount + shippingCharge, floored at zero
func (e PricingEngine) ComputeTotals(items []order.Item, coupon *pricing.Coupon) (Totals, error) {
	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Totals{}, err
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	discount := kernel.ZeroMoney()
	if coupon != nil {
		if err := coupon.CheckEligibility(subtotal); err != nil {
			return Totals{}, err
		}
		discount = coupon.DiscountOn(subtotal)
	}

	shippingCharge := e.shippingFor(subtotal)
	total := subtotal.SubFloored(discount).Add(shippingCharge)

	return Totals{
		Subtotal:       subtotal,
		Discount:       discount,
		ShippingCharge: shippingCharge,
		Total:          total,
	}, nil
}

// shippingFor returns the shipping charge for a subtotal per the configured
// free-shipping threshold.
func (e PricingEngine) shippingFor(subtotal kernel.Money) kernel.Money {
	if !subtotal.LessThan(e.freeShippingThreshold) {
		return kernel.ZeroMoney()
	}
	return e.defaultShippingCharge
}
