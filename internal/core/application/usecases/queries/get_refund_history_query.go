package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetRefundHistoryQueryIsNotConstructed = errors.New(
	"GetRefundHistoryQuery must be created via NewGetRefundHistoryQuery constructor",
)

// GetRefundHistoryQuery retrieves the refund ledger entries of one order
// together with the remaining refundable amount.
type GetRefundHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRefundHistoryQuery creates a query for an order's refund history.
// Validates that the order ID is valid.
func NewGetRefundHistoryQuery(orderID kernel.UUID) (GetRefundHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetRefundHistoryQuery{}, err
	}

	return GetRefundHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRefundHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetRefundHistoryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose refunds are requested.
func (q GetRefundHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetRefundEntryResponse is one refund ledger entry.
type GetRefundEntryResponse struct {
	ID        kernel.UUID
	Amount    string
	Reason    string
	CreatedAt time.Time
}

// GetRefundHistoryQueryResponse represents an order's refund ledger.
// TotalRefunded and Available are derived from the entries and the order
// total at read time, never from a stored counter.
type GetRefundHistoryQueryResponse struct {
	OrderID       kernel.UUID
	Refunds       []GetRefundEntryResponse
	TotalRefunded string
	Available     string
}
