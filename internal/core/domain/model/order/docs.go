// Package order provides domain entities and business logic for order
// management in the commerce core. It implements the Order aggregate root
// with lifecycle management, settlement status, and immutable line-item
// snapshots.
//
// The package includes:
//   - Order: the aggregate root owning identity, totals, and lifecycle
//   - Status: a state machine enforcing the fulfillment workflow
//   - PaymentStatus / PaymentMethod: settlement state denormalized from the ledger
//   - Item: an immutable line-item snapshot created with the order
//   - Address: an immutable shipping destination snapshot
//
// Key business rules:
//   - Status follows New -> Confirmed -> Packed -> Shipped -> Delivered,
//     with Cancelled and Returned as terminal exits from any non-terminal state
//   - total = subtotal - discount + shippingCharge holds at every committed write
//   - Items and the address are never edited after placement
//   - Payment status is only mutated alongside a payment ledger write
package order
