package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/payment"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRefundHistoryQueryHandler reads the refund ledger of one order.
// The remaining refundable amount is computed the same way the refund
// command computes it: order total minus the sum of refund entries.
type GetRefundHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetRefundHistoryQueryHandler creates a handler for refund history
// reads.
func NewGetRefundHistoryQueryHandler(db *gorm.DB) GetRefundHistoryQueryHandler {
	return GetRefundHistoryQueryHandler{db: db}
}

// Handle executes the refund history read.
// Returns an ObjectNotFoundError when no order exists for the ID. An order
// without refunds yields an empty entry list with the full total available.
func (h GetRefundHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetRefundHistoryQuery,
) (GetRefundHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRefundHistoryQueryResponse{}, err
	}

	total, err := h.readOrderTotal(ctx, query.OrderID())
	if err != nil {
		return GetRefundHistoryQueryResponse{}, err
	}

	refunds, refunded, err := h.readRefunds(ctx, query.OrderID())
	if err != nil {
		return GetRefundHistoryQueryResponse{}, err
	}

	available := total.Sub(refunded)
	if available.IsNegative() {
		available = decimal.Zero
	}

	return GetRefundHistoryQueryResponse{
		OrderID:       query.OrderID(),
		Refunds:       refunds,
		TotalRefunded: refunded.StringFixed(2),
		Available:     available.StringFixed(2),
	}, nil
}

func (h GetRefundHistoryQueryHandler) readOrderTotal(
	ctx context.Context, orderID kernel.UUID,
) (decimal.Decimal, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT total FROM orders WHERE id = ?
	`, orderID.Bytes()).Row()

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return decimal.Zero, err
	}

	return total, nil
}

func (h GetRefundHistoryQueryHandler) readRefunds(
	ctx context.Context, orderID kernel.UUID,
) ([]GetRefundEntryResponse, decimal.Decimal, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			refund_amount,
			refund_reason,
			created_at
		FROM payments
		WHERE order_id = ? AND status = ?
		ORDER BY created_at, id
	`, orderID.Bytes(), int(payment.EntryRefunded)).Rows()
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer rows.Close()

	refunds := make([]GetRefundEntryResponse, 0)
	refunded := decimal.Zero

	for rows.Next() {
		var (
			id        uuid.UUID
			amount    decimal.Decimal
			reason    string
			createdAt time.Time
		)

		if err = rows.Scan(&id, &amount, &reason, &createdAt); err != nil {
			return nil, decimal.Zero, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, decimal.Zero, idErr
		}

		refunded = refunded.Add(amount)
		refunds = append(refunds, GetRefundEntryResponse{
			ID:        entryID,
			Amount:    amount.StringFixed(2),
			Reason:    reason,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, decimal.Zero, err
	}

	return refunds, refunded, nil
}
