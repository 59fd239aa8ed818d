package order

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer's placed purchase. It is the aggregate root
// that manages the order lifecycle from placement through fulfillment and
// financial settlement.
//
// Order follows these invariants:
//   - Identity (id, order number) and the address snapshot are immutable
//   - Monetary fields are non-negative and total = subtotal - discount + shippingCharge
//     at every committed write
//   - Items are frozen at placement; corrections happen through refunds
//   - Status transitions follow the lifecycle state machine
//   - Payment status only changes together with a payment ledger write;
//     the command handlers keep the two in one transaction
type Order struct {
	id            kernel.UUID
	orderNumber   string
	status        Status
	paymentStatus PaymentStatus
	paymentMethod PaymentMethod

	subtotal       kernel.Money
	discount       kernel.Money
	shippingCharge kernel.Money
	total          kernel.Money

	address   Address
	items     []Item
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in New status with Pending payment.
// The monetary fields come from the pricing engine; the constructor
// re-checks the total formula so an inconsistent set of amounts can never
// be committed.
//
// Parameters:
//   - id: unique identifier (must be valid)
//   - orderNumber: human-facing order number (required, immutable)
//   - method: payment method (COD or Online)
//   - address: validated shipping address snapshot
//   - items: at least one validated line item
//   - subtotal, discount, shippingCharge, total: computed totals satisfying
//     total = subtotal - discount + shippingCharge (floored at zero)
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	method PaymentMethod,
	address Address,
	items []Item,
	subtotal kernel.Money,
	discount kernel.Money,
	shippingCharge kernel.Money,
	total kernel.Money,
) (*Order, error) {
	return RestoreOrder(
		id, orderNumber, StatusNew, PaymentPending, method,
		address, items, subtotal, discount, shippingCharge, total,
		time.Now().UTC(),
	)
}

// RestoreOrder reconstructs an Order from persistence. All invariants are
// re-validated so corrupt rows surface as errors instead of invalid
// aggregates.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	status Status,
	paymentStatus PaymentStatus,
	method PaymentMethod,
	address Address,
	items []Item,
	subtotal kernel.Money,
	discount kernel.Money,
	shippingCharge kernel.Money,
	total kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        status,
		paymentStatus: paymentStatus,
		isConstructed: true,
		createdAt:     createdAt,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		status.Validate(),
		paymentStatus.Validate(),
		order.setPaymentMethod(method),
		order.setAddress(address),
		order.setItems(items),
		order.setTotals(subtotal, discount, shippingCharge, total),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call this when receiving an aggregate from outside the
// package boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current settlement status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentMethod returns how the order is paid for.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// IsCOD reports whether payment is collected on delivery.
func (o *Order) IsCOD() bool {
	return o.paymentMethod == MethodCOD
}

// Subtotal returns the sum of line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Discount returns the coupon discount applied at placement.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// ShippingCharge returns the shipping charge applied at placement.
func (o *Order) ShippingCharge() kernel.Money {
	return o.shippingCharge
}

// Total returns the amount payable for the order.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Address returns the shipping address snapshot.
func (o *Order) Address() Address {
	return o.address
}

// Items returns a copy of the line-item snapshots.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to the target lifecycle status.
// Fails with an InvalidTransitionError for any edge outside the allowed
// set, leaving the current status unchanged.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPaid records that the full order amount has been captured.
// Allowed while payment is Pending or after a Failed attempt. The calling
// handler must append the matching capture entry to the payment ledger in
// the same transaction.
func (o *Order) MarkPaid() error {
	if o.paymentStatus != PaymentPending && o.paymentStatus != PaymentFailed {
		return errs.NewInvalidTransitionError("payment", o.paymentStatus.String(), PaymentPaid.String())
	}

	o.paymentStatus = PaymentPaid
	return nil
}

// MarkPaymentFailed records a failed capture attempt reported by the
// gateway. No ledger entry is written for failures.
func (o *Order) MarkPaymentFailed() error {
	if o.paymentStatus != PaymentPending && o.paymentStatus != PaymentFailed {
		return errs.NewInvalidTransitionError("payment", o.paymentStatus.String(), PaymentFailed.String())
	}

	o.paymentStatus = PaymentFailed
	return nil
}

// ApplyRefund records the settlement effect of a refund ledger entry.
// A full refund moves the payment status to Refunded; a partial refund to
// PartiallyRefunded. Only captured orders can be refunded.
func (o *Order) ApplyRefund(full bool) error {
	if o.paymentStatus != PaymentPaid && o.paymentStatus != PaymentPartiallyRefunded {
		target := PaymentPartiallyRefunded
		if full {
			target = PaymentRefunded
		}
		return errs.NewInvalidTransitionError("payment", o.paymentStatus.String(), target.String())
	}

	if full {
		o.paymentStatus = PaymentRefunded
	} else {
		o.paymentStatus = PaymentPartiallyRefunded
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setTotals validates the monetary invariant:
// total = subtotal - discount + shippingCharge, floored at zero.
func (o *Order) setTotals(subtotal, discount, shippingCharge, total kernel.Money) error {
	expected := subtotal.SubFloored(discount).Add(shippingCharge)
	if !total.IsEqual(expected) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order total",
			fmt.Errorf("%s does not equal subtotal %s - discount %s + shipping %s",
				total, subtotal, discount, shippingCharge),
		)
	}

	o.subtotal = subtotal
	o.discount = discount
	o.shippingCharge = shippingCharge
	o.total = total
	return nil
}
