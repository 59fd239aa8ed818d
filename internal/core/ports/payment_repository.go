package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for the append-only
// payment ledger. There is deliberately no update or delete: refunds and
// corrections are new entries.
type PaymentRepository interface {
	// Add appends a ledger entry for an order.
	Add(ctx context.Context, entry *payment.Payment) error

	// GetAllForOrder retrieves all ledger entries for an order in append
	// order. An order with no settlement activity yields an empty slice.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)
}
