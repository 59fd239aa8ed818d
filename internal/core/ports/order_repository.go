package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Updates address a single record by identifier; the store's per-record
// update semantics are the concurrency boundary, so concurrent transitions
// on the same order cannot silently overwrite each other.
type OrderRepository interface {
	// Add persists a new order aggregate and its line items atomically.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must already exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
