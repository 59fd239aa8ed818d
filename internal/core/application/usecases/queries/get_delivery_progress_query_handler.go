package queries

import (
	"context"
	"database/sql"
	"errors"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryProgressQueryHandler reads a delivery's tracking state.
// The progress fraction is derived from the stored status through the
// domain's status ordering, so read and write sides cannot disagree on it.
type GetDeliveryProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryProgressQueryHandler creates a handler for delivery
// progress reads.
func NewGetDeliveryProgressQueryHandler(db *gorm.DB) GetDeliveryProgressQueryHandler {
	return GetDeliveryProgressQueryHandler{db: db}
}

// Handle executes the delivery progress read.
// Returns an ObjectNotFoundError when no delivery exists for the ID.
func (h GetDeliveryProgressQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryProgressQuery,
) (GetDeliveryProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryProgressQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			partner_name,
			tracking_number,
			tracking_url,
			delivered_at
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Row()

	var (
		resp        GetDeliveryProgressQueryResponse
		id, orderID uuid.UUID
		status      int
		deliveredAt sql.NullTime
	)

	err := row.Scan(
		&id,
		&orderID,
		&status,
		&resp.PartnerName,
		&resp.TrackingNumber,
		&resp.TrackingURL,
		&deliveredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDeliveryProgressQueryResponse{}, errs.NewObjectNotFoundError(
				"delivery", query.DeliveryID().String(),
			)
		}
		return GetDeliveryProgressQueryResponse{}, err
	}

	respID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDeliveryProgressQueryResponse{}, err
	}
	respOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetDeliveryProgressQueryResponse{}, err
	}

	resp.ID = respID
	resp.OrderID = respOrderID
	resp.Status = delivery.Status(status).String()
	resp.Progress = delivery.Status(status).Progress()
	if deliveredAt.Valid {
		at := deliveredAt.Time.UTC()
		resp.DeliveredAt = &at
	}

	return resp, nil
}
