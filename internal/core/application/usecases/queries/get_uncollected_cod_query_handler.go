package queries

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUncollectedCODQueryHandler lists delivered COD deliveries whose cash
// is still with the partner. The hourly reconciliation job logs this list;
// operations chases the partners.
type GetUncollectedCODQueryHandler struct {
	db *gorm.DB
}

// NewGetUncollectedCODQueryHandler creates a handler for outstanding COD
// queries.
func NewGetUncollectedCODQueryHandler(db *gorm.DB) GetUncollectedCODQueryHandler {
	return GetUncollectedCODQueryHandler{db: db}
}

// Handle executes the query for outstanding COD collections.
// Results are sorted oldest delivery first so the longest outstanding cash
// is chased first.
func (h GetUncollectedCODQueryHandler) Handle(
	ctx context.Context,
	query GetUncollectedCODQuery,
) ([]GetUncollectedCODQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			partner_name,
			cod_amount,
			delivered_at
		FROM deliveries
		WHERE status = ? AND is_cod AND NOT cod_collected
		ORDER BY delivered_at
	`, int(delivery.StatusDelivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	outstanding := make([]GetUncollectedCODQueryResponse, 0)

	for rows.Next() {
		var (
			id, orderID uuid.UUID
			partnerName string
			codAmount   decimal.Decimal
			deliveredAt time.Time
		)

		if err = rows.Scan(&id, &orderID, &partnerName, &codAmount, &deliveredAt); err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		respOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		outstanding = append(outstanding, GetUncollectedCODQueryResponse{
			DeliveryID:  deliveryID,
			OrderID:     respOrderID,
			PartnerName: partnerName,
			CODAmount:   codAmount.StringFixed(2),
			DeliveredAt: deliveredAt.UTC(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return outstanding, nil
}
