package http

import (
	"time"

	"commerce/internal/core/application/usecases/queries"
)

// ErrorResponse is the error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is one requested line in a new order.
type OrderLineRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// AddressRequest is the shipping address submitted with a new order.
type AddressRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	Lines         []OrderLineRequest `json:"lines"`
	CouponCode    string             `json:"coupon_code"`
	Address       AddressRequest     `json:"address"`
	PaymentMethod string             `json:"payment_method"`
}

// PlaceOrderResponse is the body returned on successful order placement.
type PlaceOrderResponse struct {
	OrderID string `json:"order_id"`
}

// ChangeStatusRequest is the body of the order and delivery status endpoints.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// RecordPaymentRequest is the body of POST /api/v1/orders/:id/payments.
type RecordPaymentRequest struct {
	Amount    string `json:"amount"`
	Method    string `json:"method"`
	Succeeded bool   `json:"succeeded"`
}

// RefundOrderRequest is the body of POST /api/v1/orders/:id/refunds.
type RefundOrderRequest struct {
	Amount string `json:"amount"`
	Reason string `json:"reason"`
}

// AssignPartnerRequest is the body of POST /api/v1/deliveries/:id/assign.
type AssignPartnerRequest struct {
	PartnerName    string `json:"partner_name"`
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
}

// OrderItem is one line item in an order representation.
type OrderItem struct {
	ProductName string `json:"product_name"`
	VariantName string `json:"variant_name"`
	SKU         string `json:"sku"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	LineTotal   string `json:"line_total"`
}

// OrderAddress is the shipping address snapshot in an order representation.
type OrderAddress struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
}

// Order is the representation returned by GET /api/v1/orders/:id.
type Order struct {
	ID             string       `json:"id"`
	OrderNumber    string       `json:"order_number"`
	Status         string       `json:"status"`
	PaymentStatus  string       `json:"payment_status"`
	PaymentMethod  string       `json:"payment_method"`
	Subtotal       string       `json:"subtotal"`
	Discount       string       `json:"discount"`
	ShippingCharge string       `json:"shipping_charge"`
	Total          string       `json:"total"`
	Address        OrderAddress `json:"address"`
	Items          []OrderItem  `json:"items"`
	CreatedAt      time.Time    `json:"created_at"`
}

// RefundEntry is one refund in a refund history representation.
type RefundEntry struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// RefundHistory is the representation returned by GET /api/v1/orders/:id/refunds.
type RefundHistory struct {
	OrderID       string        `json:"order_id"`
	Refunds       []RefundEntry `json:"refunds"`
	TotalRefunded string        `json:"total_refunded"`
	Available     string        `json:"available"`
}

// DeliveryProgress is the representation returned by
// GET /api/v1/deliveries/:id/progress.
type DeliveryProgress struct {
	ID             string     `json:"id"`
	OrderID        string     `json:"order_id"`
	Status         string     `json:"status"`
	Progress       float64    `json:"progress"`
	PartnerName    string     `json:"partner_name,omitempty"`
	TrackingNumber string     `json:"tracking_number,omitempty"`
	TrackingURL    string     `json:"tracking_url,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

// UncollectedCOD is one outstanding cash collection in the reconciliation list.
type UncollectedCOD struct {
	DeliveryID  string    `json:"delivery_id"`
	OrderID     string    `json:"order_id"`
	PartnerName string    `json:"partner_name"`
	CODAmount   string    `json:"cod_amount"`
	DeliveredAt time.Time `json:"delivered_at"`
}

func toOrder(resp queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItem{
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			SKU:         item.SKU,
			Price:       item.Price,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		}
	}

	return Order{
		ID:             resp.ID.String(),
		OrderNumber:    resp.OrderNumber,
		Status:         resp.Status,
		PaymentStatus:  resp.PaymentStatus,
		PaymentMethod:  resp.PaymentMethod,
		Subtotal:       resp.Subtotal,
		Discount:       resp.Discount,
		ShippingCharge: resp.ShippingCharge,
		Total:          resp.Total,
		Address: OrderAddress{
			Name:     resp.Address.Name,
			Phone:    resp.Address.Phone,
			Line1:    resp.Address.Line1,
			Line2:    resp.Address.Line2,
			City:     resp.Address.City,
			Postcode: resp.Address.Postcode,
		},
		Items:     items,
		CreatedAt: resp.CreatedAt,
	}
}

func toRefundHistory(resp queries.GetRefundHistoryQueryResponse) RefundHistory {
	refunds := make([]RefundEntry, len(resp.Refunds))
	for i, refund := range resp.Refunds {
		refunds[i] = RefundEntry{
			ID:        refund.ID.String(),
			Amount:    refund.Amount,
			Reason:    refund.Reason,
			CreatedAt: refund.CreatedAt,
		}
	}

	return RefundHistory{
		OrderID:       resp.OrderID.String(),
		Refunds:       refunds,
		TotalRefunded: resp.TotalRefunded,
		Available:     resp.Available,
	}
}

func toDeliveryProgress(resp queries.GetDeliveryProgressQueryResponse) DeliveryProgress {
	return DeliveryProgress{
		ID:             resp.ID.String(),
		OrderID:        resp.OrderID.String(),
		Status:         resp.Status,
		Progress:       resp.Progress,
		PartnerName:    resp.PartnerName,
		TrackingNumber: resp.TrackingNumber,
		TrackingURL:    resp.TrackingURL,
		DeliveredAt:    resp.DeliveredAt,
	}
}

func toUncollectedCOD(responses []queries.GetUncollectedCODQueryResponse) []UncollectedCOD {
	result := make([]UncollectedCOD, len(responses))
	for i, resp := range responses {
		result[i] = UncollectedCOD{
			DeliveryID:  resp.DeliveryID.String(),
			OrderID:     resp.OrderID.String(),
			PartnerName: resp.PartnerName,
			CODAmount:   resp.CODAmount,
			DeliveredAt: resp.DeliveredAt,
		}
	}
	return result
}
