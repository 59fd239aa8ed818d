package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents the outcome of a payment attempt against
// an order. A succeeded attempt records a capture ledger entry and marks the
// order paid; a failed attempt only marks the order's payment failed.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	amount    kernel.Money
	method    order.PaymentMethod
	succeeded bool

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment attempt.
// Validates that the order ID is valid, the amount is positive, and the
// method is known.
func NewRecordPaymentCommand(
	orderID kernel.UUID,
	amount kernel.Money,
	method order.PaymentMethod,
	succeeded bool,
) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		succeeded: succeeded,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setAmount(amount),
		paymentCommand.setMethod(method),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the captured amount.
func (c RecordPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns the payment method used for the attempt.
func (c RecordPaymentCommand) Method() order.PaymentMethod {
	return c.method
}

// Succeeded reports whether the payment attempt succeeded.
func (c RecordPaymentCommand) Succeeded() bool {
	return c.succeeded
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewInvalidAmountError("payment amount", amount.String())
	}

	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
