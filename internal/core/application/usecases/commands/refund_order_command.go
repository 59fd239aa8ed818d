package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrRefundOrderCommandIsNotConstructed = errors.New(
	"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
)

// RefundOrderCommand represents a request to refund part or all of a paid
// order. The amount is bounded by what remains refundable on the order,
// which the handler checks against the ledger.
type RefundOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  kernel.Money
	reason  string

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a command to refund an order.
// Validates that the order ID is valid, the amount is positive, and a
// reason is given.
func NewRefundOrderCommand(orderID kernel.UUID, amount kernel.Money, reason string) (RefundOrderCommand, error) {
	refundCommand := RefundOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		refundCommand.setOrderID(orderID),
		refundCommand.setAmount(amount),
		refundCommand.setReason(reason),
	); err != nil {
		return RefundOrderCommand{}, err
	}

	return refundCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to refund.
func (c RefundOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the requested refund amount.
func (c RefundOrderCommand) Amount() kernel.Money {
	return c.amount
}

// Reason returns the stated reason for the refund.
func (c RefundOrderCommand) Reason() string {
	return c.reason
}

func (c *RefundOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RefundOrderCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewInvalidAmountError("refund amount", amount.String())
	}

	c.amount = amount
	return nil
}

func (c *RefundOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("refund reason")
	}

	c.reason = reason
	return nil
}
