// Package payment provides the append-only payment ledger for orders.
// Every settlement event is a new ledger entry: captures carry a positive
// amount, refunds a negative amount with the refunded value and reason
// recorded alongside. Entries are never mutated or deleted; a correction is
// another entry, not an edit. The sum of refund amounts on an order's ledger
// never exceeds the captured total; the refund operation enforces the bound
// before appending.
package payment

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through a factory function.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewCapture, NewRefund, or RestorePayment")
)

// EntryStatus classifies a ledger entry.
type EntryStatus int

const (
	// EntryUnknown represents an invalid or undefined entry status.
	EntryUnknown EntryStatus = iota

	// EntryReceived marks a capture: money received for the order.
	EntryReceived

	// EntryRefunded marks a refund: money returned to the customer.
	EntryRefunded
)

// String returns the human-readable name of the entry status.
func (s EntryStatus) String() string {
	switch s {
	case EntryReceived:
		return "Received"
	case EntryRefunded:
		return "Refunded"
	default:
		return "Unknown"
	}
}

// Validate checks if the EntryStatus is one of the defined values.
func (s EntryStatus) Validate() error {
	if s != EntryReceived && s != EntryRefunded {
		return errs.NewValueIsInvalidError("payment entry status")
	}
	return nil
}

// Payment is a single immutable ledger entry belonging to an order.
// The signed amount is positive for captures and negative for refunds.
type Payment struct {
	id      kernel.UUID
	orderID kernel.UUID
	amount  decimal.Decimal
	method  order.PaymentMethod
	status  EntryStatus

	refundAmount kernel.Money
	refundReason string

	createdAt time.Time

	isConstructed bool
}

// NewCapture creates a capture entry recording money received for an order.
// The amount must be positive.
func NewCapture(id, orderID kernel.UUID, method order.PaymentMethod, amount kernel.Money) (*Payment, error) {
	if amount.IsZero() {
		return nil, errs.NewInvalidAmountError("capture amount must be greater than 0", amount.String())
	}

	return RestorePayment(
		id, orderID, amount.Amount(), method, EntryReceived,
		kernel.ZeroMoney(), "", time.Now().UTC(),
	)
}

// NewRefund creates a refund entry recording money returned to the customer.
// The signed ledger amount is the negated refund value; the positive refund
// value and the reason are kept on the entry for reporting. The refund bound
// against the captured total is enforced by the refund operation, which
// reads the existing ledger before appending.
func NewRefund(id, orderID kernel.UUID, method order.PaymentMethod, refundAmount kernel.Money, reason string) (*Payment, error) {
	if refundAmount.IsZero() {
		return nil, errs.NewInvalidAmountError("refund amount must be greater than 0", refundAmount.String())
	}

	return RestorePayment(
		id, orderID, refundAmount.Amount().Neg(), method, EntryRefunded,
		refundAmount, reason, time.Now().UTC(),
	)
}

// RestorePayment reconstructs a ledger entry from persistence, re-validating
// the sign conventions for the entry status.
func RestorePayment(
	id, orderID kernel.UUID,
	amount decimal.Decimal,
	method order.PaymentMethod,
	status EntryStatus,
	refundAmount kernel.Money,
	refundReason string,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		amount:        amount,
		status:        status,
		refundAmount:  refundAmount,
		refundReason:  refundReason,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		method.Validate(),
		status.Validate(),
		p.validateSign(),
	); err != nil {
		return nil, err
	}
	p.method = method

	return p, nil
}

// Validate ensures the entry was created through a factory function.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order this entry belongs to.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the signed ledger amount: positive for captures, negative
// for refunds.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// Method returns the payment method of the entry.
func (p *Payment) Method() order.PaymentMethod {
	return p.method
}

// Status returns the entry classification.
func (p *Payment) Status() EntryStatus {
	return p.status
}

// RefundAmount returns the positive refunded value; zero for captures.
func (p *Payment) RefundAmount() kernel.Money {
	return p.refundAmount
}

// RefundReason returns the optional reason supplied with a refund.
func (p *Payment) RefundReason() string {
	return p.refundReason
}

// CreatedAt returns the time the entry was appended.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

// validateSign enforces the ledger sign conventions per entry status.
func (p *Payment) validateSign() error {
	switch p.status {
	case EntryReceived:
		if !p.amount.IsPositive() {
			return errs.NewInvalidAmountError("capture amount must be greater than 0", p.amount.String())
		}
		if !p.refundAmount.IsZero() {
			return errs.NewValueIsInvalidError("capture entry cannot carry a refund amount")
		}
	case EntryRefunded:
		if !p.amount.IsNegative() {
			return errs.NewInvalidAmountError("refund ledger amount must be negative", p.amount.String())
		}
		if p.refundAmount.IsZero() {
			return errs.NewInvalidAmountError("refund amount must be greater than 0", p.refundAmount.String())
		}
		if !p.amount.Neg().Equal(p.refundAmount.Amount()) {
			return errs.NewValueIsInvalidError("refund amount must match the negated ledger amount")
		}
	}
	return nil
}
