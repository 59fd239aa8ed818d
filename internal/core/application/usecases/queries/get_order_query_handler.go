package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its line items from the
// database. The read bypasses the aggregate and formats amounts for
// presentation.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order read.
// Returns an ObjectNotFoundError when no order exists for the ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.readItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) readOrder(
	ctx context.Context, orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			payment_status,
			payment_method,
			subtotal,
			discount,
			shipping_charge,
			total,
			address_name,
			address_phone,
			address_line1,
			address_line2,
			address_city,
			address_postcode,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		resp                                 GetOrderQueryResponse
		id                                   uuid.UUID
		status, paymentStatus, paymentMethod int
		subtotal, discount, shipping, total  decimal.Decimal
		createdAt                            time.Time
	)

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&status,
		&paymentStatus,
		&paymentMethod,
		&subtotal,
		&discount,
		&shipping,
		&total,
		&resp.Address.Name,
		&resp.Address.Phone,
		&resp.Address.Line1,
		&resp.Address.Line2,
		&resp.Address.City,
		&resp.Address.Postcode,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return GetOrderQueryResponse{}, err
	}

	respID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID = respID
	resp.Status = order.Status(status).String()
	resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()
	resp.PaymentMethod = order.PaymentMethod(paymentMethod).String()
	resp.Subtotal = subtotal.StringFixed(2)
	resp.Discount = discount.StringFixed(2)
	resp.ShippingCharge = shipping.StringFixed(2)
	resp.Total = total.StringFixed(2)
	resp.CreatedAt = createdAt

	return resp, nil
}

func (h GetOrderQueryHandler) readItems(
	ctx context.Context, orderID kernel.UUID,
) ([]GetOrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_name,
			variant_name,
			sku,
			price,
			quantity,
			line_total
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderItemResponse, 0)

	for rows.Next() {
		var item GetOrderItemResponse
		var price, lineTotal decimal.Decimal

		if err = rows.Scan(
			&item.ProductName,
			&item.VariantName,
			&item.SKU,
			&price,
			&item.Quantity,
			&lineTotal,
		); err != nil {
			return nil, err
		}

		item.Price = price.StringFixed(2)
		item.LineTotal = lineTotal.StringFixed(2)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
