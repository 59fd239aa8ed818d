package delivery

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery or RestoreDelivery factory functions.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
)

// Delivery represents the fulfillment record tracking an order from dispatch
// to receipt. Exactly one delivery exists per order, created when the order
// is confirmed for shipment. The delivery outlives its order: cancelling the
// order preserves the delivery history.
//
// Delivery follows these invariants:
//   - The order reference is required and immutable
//   - COD flag and amount are fixed at creation; only the collected flag is mutable
//   - deliveredAt is set exactly once, on the transition into Delivered
//   - Status transitions follow the delivery state machine
type Delivery struct {
	id      kernel.UUID
	orderID kernel.UUID
	status  Status

	partnerName    string
	trackingNumber string
	trackingURL    string
	deliveredAt    *time.Time

	isCOD        bool
	codAmount    kernel.Money
	codCollected bool

	isConstructed bool
}

// NewDelivery creates a delivery record in Pending status for an order.
// For COD orders the amount to collect must be positive; for prepaid orders
// it must be zero.
func NewDelivery(id, orderID kernel.UUID, isCOD bool, codAmount kernel.Money) (*Delivery, error) {
	return RestoreDelivery(id, orderID, StatusPending, "", "", "", nil, isCOD, codAmount, false)
}

// RestoreDelivery reconstructs a Delivery from persistence, re-validating
// all invariants including the deliveredAt/Delivered coupling.
func RestoreDelivery(
	id, orderID kernel.UUID,
	status Status,
	partnerName, trackingNumber, trackingURL string,
	deliveredAt *time.Time,
	isCOD bool,
	codAmount kernel.Money,
	codCollected bool,
) (*Delivery, error) {
	d := &Delivery{
		status:         status,
		partnerName:    partnerName,
		trackingNumber: trackingNumber,
		trackingURL:    trackingURL,
		deliveredAt:    deliveredAt,
		codCollected:   codCollected,
		isConstructed:  true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		status.Validate(),
		d.setCOD(isCOD, codAmount),
		d.validateDeliveredAt(),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed through a
// factory function.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order being fulfilled.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Status returns the current fulfillment status.
func (d *Delivery) Status() Status {
	return d.status
}

// Progress returns the completion fraction derived from the status position.
func (d *Delivery) Progress() float64 {
	return d.status.Progress()
}

// PartnerName returns the assigned delivery partner, empty until assignment.
func (d *Delivery) PartnerName() string {
	return d.partnerName
}

// TrackingNumber returns the partner's tracking number, empty until assignment.
func (d *Delivery) TrackingNumber() string {
	return d.trackingNumber
}

// TrackingURL returns the partner's tracking page URL, empty until assignment.
func (d *Delivery) TrackingURL() string {
	return d.trackingURL
}

// DeliveredAt returns the handover time, nil until the delivery reaches
// Delivered. The value is write-once.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// IsCOD reports whether the partner collects payment at handover.
func (d *Delivery) IsCOD() bool {
	return d.isCOD
}

// CODAmount returns the amount to collect at handover; zero for prepaid orders.
func (d *Delivery) CODAmount() kernel.Money {
	return d.codAmount
}

// CODCollected reports whether the COD amount has been collected.
func (d *Delivery) CODCollected() bool {
	return d.codCollected
}

// AssignPartner records the delivery partner and tracking details and moves
// the delivery to Assigned. Reassignment while still in Assigned is allowed;
// once the package is picked the partner can no longer change.
func (d *Delivery) AssignPartner(partnerName, trackingNumber, trackingURL string) error {
	if partnerName == "" {
		return errs.NewValueIsRequiredError("partner name")
	}
	if d.status != StatusPending && d.status != StatusAssigned {
		return errs.NewInvalidTransitionError("delivery", d.status.String(), StatusAssigned.String())
	}

	d.status = StatusAssigned
	d.partnerName = partnerName
	d.trackingNumber = trackingNumber
	d.trackingURL = trackingURL
	return nil
}

// ChangeStatus moves the delivery to the target status.
// The transition into Delivered records the handover time; since Delivered
// has no outgoing edges, deliveredAt is write-once. Fails with an
// InvalidTransitionError for any edge outside the allowed set, leaving the
// current status unchanged.
func (d *Delivery) ChangeStatus(target Status, at time.Time) error {
	newStatus, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}

	d.status = newStatus
	if newStatus == StatusDelivered {
		deliveredAt := at.UTC()
		d.deliveredAt = &deliveredAt
	}
	return nil
}

// MarkCODCollected records that the partner collected the COD amount.
// Only valid for COD deliveries and only once. Collection is not gated on
// Delivered status here; the collect operation records the payment against
// the order in the same transaction, which is the actual consistency
// boundary.
func (d *Delivery) MarkCODCollected() error {
	if !d.isCOD {
		return errs.NewValueIsInvalidError("delivery is not cash on delivery")
	}
	if d.codCollected {
		return errs.NewValueIsInvalidError("cash on delivery amount is already collected")
	}

	d.codCollected = true
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setCOD(isCOD bool, codAmount kernel.Money) error {
	if isCOD && codAmount.IsZero() {
		return errs.NewValueIsInvalidError("cod amount must be positive for cash on delivery")
	}
	if !isCOD && !codAmount.IsZero() {
		return errs.NewValueIsInvalidError("cod amount must be zero for prepaid deliveries")
	}

	d.isCOD = isCOD
	d.codAmount = codAmount
	return nil
}

// validateDeliveredAt enforces: deliveredAt is set if and only if the
// delivery has reached Delivered.
func (d *Delivery) validateDeliveredAt() error {
	if d.status == StatusDelivered && d.deliveredAt == nil {
		return errs.NewValueIsRequiredError("deliveredAt for delivered delivery")
	}
	if d.status != StatusDelivered && d.deliveredAt != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveredAt",
			fmt.Errorf("set while status is %s", d.status),
		)
	}
	return nil
}
