// Package services provides domain services that implement business logic
// spanning multiple domain entities in the commerce core.
//
// The package includes:
//   - PricingEngine: a pure domain service computing cart and order totals
//     from line items, coupons, and the shipping policy
//
// Domain services coordinate between value objects and aggregates,
// implementing logic that does not naturally belong to a single aggregate
// root, following Domain-Driven Design principles.
package services
