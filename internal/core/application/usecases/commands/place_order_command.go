package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
)

// OrderLine is a single requested product in a placement request.
// Quantities are validated during command construction; price, name, and
// stock are resolved against the catalog by the handler.
type OrderLine struct {
	SKU      string
	Quantity int
}

// PlaceOrderCommand represents a request to place a new customer order.
// Carries the requested lines, the shipping address snapshot, the chosen
// payment method, and an optional coupon code.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, lines, "SAVE10", address, order.MethodOnline)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, catalog, coupons, offers, engine)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	lines         []OrderLine
	couponCode    string
	address       order.Address
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, at least one line with a positive
// quantity is present, the address is constructed, and the payment method
// is known. An empty coupon code means no coupon.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	lines []OrderLine,
	couponCode string,
	address order.Address,
	paymentMethod order.PaymentMethod,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		couponCode: couponCode,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setOrderID(orderID),
		placeCommand.setLines(lines),
		placeCommand.setAddress(address),
		placeCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	result := make([]OrderLine, len(c.lines))
	copy(result, c.lines)
	return result
}

// CouponCode returns the coupon code as submitted, or empty when none.
func (c PlaceOrderCommand) CouponCode() string {
	return c.couponCode
}

// Address returns the shipping address snapshot.
func (c PlaceOrderCommand) Address() order.Address {
	return c.address
}

// PaymentMethod returns the chosen payment method.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if line.SKU == "" {
			return errs.NewValueIsRequiredError("sku")
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *PlaceOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
