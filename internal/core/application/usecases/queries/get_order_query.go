// Package queries contains read-only operations over the order store.
// Query handlers bypass the domain aggregates and read denormalized rows
// directly, returning presentation-ready responses with amounts formatted
// to two decimal places.
package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items and totals.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s total %s\n", resp.OrderNumber, resp.Total)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
// Validates that the order ID is valid.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderItemResponse is one line item in an order response.
// Price and LineTotal carry amounts rounded to two decimal places.
type GetOrderItemResponse struct {
	ProductName string
	VariantName string
	SKU         string
	Price       string
	Quantity    int
	LineTotal   string
}

// GetOrderAddressResponse is the shipping address snapshot of an order.
type GetOrderAddressResponse struct {
	Name     string
	Phone    string
	Line1    string
	Line2    string
	City     string
	Postcode string
}

// GetOrderQueryResponse represents one order with its items and totals.
// Statuses are returned as their string names; monetary amounts are
// formatted to two decimal places.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	OrderNumber    string
	Status         string
	PaymentStatus  string
	PaymentMethod  string
	Subtotal       string
	Discount       string
	ShippingCharge string
	Total          string
	Address        GetOrderAddressResponse
	Items          []GetOrderItemResponse
	CreatedAt      time.Time
}
