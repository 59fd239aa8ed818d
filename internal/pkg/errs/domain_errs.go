package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order, delivery, pricing, and refund rules.
var (
	// ErrInvalidTransition indicates a state machine was asked to take an illegal edge.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrInvalidAmount indicates a monetary amount violated a precondition.
	ErrInvalidAmount = errors.New("amount is invalid")
	// ErrRefundExceedsCaptured indicates a refund would push cumulative refunds past the captured total.
	ErrRefundExceedsCaptured = errors.New("refund exceeds captured amount")
	// ErrCouponIneligible indicates a coupon cannot be applied to the current cart.
	ErrCouponIneligible = errors.New("coupon is not eligible")
	// ErrInsufficientStock indicates a requested quantity exceeds available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrRemoteWriteFailure indicates the backing store rejected a write.
	ErrRemoteWriteFailure = errors.New("remote write failed")
)

// InvalidTransitionError is returned when a status change is not in the allowed
// edge set of a lifecycle state machine. It carries the current and attempted
// states so callers can render a precise message.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// entity kind and state pair.
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidAmountError is returned when a monetary amount fails a precondition,
// for example a refund request of zero.
type InvalidAmountError struct {
	ParamName string
	Value     string
}

// NewInvalidAmountError creates an InvalidAmountError for the given parameter
// and its offending value.
func NewInvalidAmountError(paramName, value string) *InvalidAmountError {
	return &InvalidAmountError{ParamName: paramName, Value: value}
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s: %s, got %s", ErrInvalidAmount, e.ParamName, e.Value)
}

func (e *InvalidAmountError) Unwrap() error {
	return ErrInvalidAmount
}

// RefundExceedsCapturedError is returned when a refund request is larger than
// the remaining refundable amount on the order's payment ledger.
type RefundExceedsCapturedError struct {
	Requested string
	Available string
}

// NewRefundExceedsCapturedError creates a RefundExceedsCapturedError carrying
// the requested amount and the remaining refund capacity.
func NewRefundExceedsCapturedError(requested, available string) *RefundExceedsCapturedError {
	return &RefundExceedsCapturedError{Requested: requested, Available: available}
}

func (e *RefundExceedsCapturedError) Error() string {
	return fmt.Sprintf("%s: requested %s, available %s", ErrRefundExceedsCaptured, e.Requested, e.Available)
}

func (e *RefundExceedsCapturedError) Unwrap() error {
	return ErrRefundExceedsCaptured
}

// CouponIneligibleError is returned when a coupon is inactive or the cart
// subtotal is below the coupon's minimum order value.
type CouponIneligibleError struct {
	Code   string
	Reason string
}

// NewCouponIneligibleError creates a CouponIneligibleError for the given code.
func NewCouponIneligibleError(code, reason string) *CouponIneligibleError {
	return &CouponIneligibleError{Code: code, Reason: reason}
}

func (e *CouponIneligibleError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrCouponIneligible, e.Code, e.Reason)
}

func (e *CouponIneligibleError) Unwrap() error {
	return ErrCouponIneligible
}

// InsufficientStockError is returned when a requested quantity exceeds the
// catalog's available stock for a product.
type InsufficientStockError struct {
	SKU       string
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given SKU.
func NewInsufficientStockError(sku string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{SKU: sku, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %s, requested %d, available %d", ErrInsufficientStock, e.SKU, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// RemoteWriteFailureError is returned when the backing store rejects a write.
// No retry is attempted; the caller must re-invoke the operation explicitly.
type RemoteWriteFailureError struct {
	Operation string
	Cause     error
}

// NewRemoteWriteFailureError creates a RemoteWriteFailureError wrapping the
// store error for the named operation.
func NewRemoteWriteFailureError(operation string, cause error) *RemoteWriteFailureError {
	return &RemoteWriteFailureError{Operation: operation, Cause: cause}
}

func (e *RemoteWriteFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrRemoteWriteFailure, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrRemoteWriteFailure, e.Operation)
}

func (e *RemoteWriteFailureError) Unwrap() error {
	return ErrRemoteWriteFailure
}
