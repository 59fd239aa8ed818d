// Package pricing provides the discount value objects of the commerce core.
//
// The package includes:
//   - Coupon: a customer-entered code applied to the cart subtotal at
//     checkout, with activity and minimum-order eligibility rules
//   - Offer: a product- or category-scoped promotional discount applied to
//     the unit price before aggregation, resolved per product by priority
//   - DiscountType: percentage or fixed interpretation shared by both
//
// Discounts are always clamped so they can never push an amount negative,
// and percentage discounts respect an optional cap. Coupon codes are matched
// case-insensitively by normalizing to uppercase.
package pricing
