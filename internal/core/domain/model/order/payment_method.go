package order

import (
	"fmt"
	"strings"

	"commerce/internal/pkg/errs"
)

// PaymentMethod identifies how an order is paid for.
type PaymentMethod int

const (
	// MethodUnknown represents an invalid or undefined payment method.
	MethodUnknown PaymentMethod = iota

	// MethodCOD is cash on delivery: the delivery partner collects payment
	// at handover and the payment is recorded on collection.
	MethodCOD

	// MethodOnline is an online capture through the payment gateway,
	// reported asynchronously via webhook.
	MethodOnline
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		MethodUnknown: "Unknown",
		MethodCOD:     "COD",
		MethodOnline:  "Online",
	}
}

// String returns the human-readable name of the payment method.
// Implements fmt.Stringer and is safe to call on any value.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// PaymentMethodFromString parses a payment method name, ignoring case.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if method != MethodUnknown && strings.EqualFold(s, name) {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method", fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the PaymentMethod is one of the defined methods.
func (m PaymentMethod) Validate() error {
	if m != MethodCOD && m != MethodOnline {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}
