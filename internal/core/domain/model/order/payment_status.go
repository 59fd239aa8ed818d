package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// PaymentStatus represents the settlement state of an order, denormalized
// from the payment ledger. The ledger is the source of truth; this field is
// only mutated together with a ledger write so the two never diverge.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means no capture has been recorded yet.
	PaymentPending

	// PaymentPaid means the full order total has been captured.
	PaymentPaid

	// PaymentFailed means the gateway reported a failed capture attempt.
	// The order can still be paid by a later attempt or by COD collection.
	PaymentFailed

	// PaymentPartiallyRefunded means some, but not all, of the captured
	// amount has been refunded.
	PaymentPartiallyRefunded

	// PaymentRefunded means the full captured amount has been refunded.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:           "Unknown",
		PaymentPending:           "Pending",
		PaymentPaid:              "Paid",
		PaymentFailed:            "Failed",
		PaymentPartiallyRefunded: "PartiallyRefunded",
		PaymentRefunded:          "Refunded",
	}
}

// String returns the human-readable name of the payment status.
// Implements fmt.Stringer and is safe to call on any value.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the PaymentStatus value is one of the defined states.
func (s PaymentStatus) Validate() error {
	if s < PaymentPending || s > PaymentRefunded {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}
