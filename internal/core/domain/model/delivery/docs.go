// Package delivery provides the Delivery aggregate tracking an order's
// fulfillment from dispatch to receipt.
//
// The package includes:
//   - Delivery: the aggregate root holding partner, tracking, and COD details
//   - Status: a state machine over Pending -> Assigned -> Picked -> InTransit
//     -> Delivered, with Failed reachable from any non-terminal state
//
// Key business rules:
//   - Forward jumps along the canonical ordering are allowed, backward moves are not
//   - deliveredAt is recorded exactly once, on the transition into Delivered
//   - COD flag and amount are fixed at creation; only the collected flag mutates
//   - The delivery survives cancellation of its order
package delivery
