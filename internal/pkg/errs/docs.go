// Package errs provides standardized error types for the commerce core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes generic validation errors:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value is outside its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//
// and the business error taxonomy of the order core:
//   - InvalidTransitionError: illegal order or delivery status edge
//   - InvalidAmountError / RefundExceedsCapturedError: refund bounds violated
//   - CouponIneligibleError: inactive coupon or subtotal below minimum
//   - InsufficientStockError: requested quantity exceeds available stock
//   - RemoteWriteFailureError: the backing store rejected a write
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrInvalidTransition)
//   - a struct type with fields for error details
//   - constructor functions, with and without cause where applicable
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Errors carry enough context (current state, attempted target, numeric
// bounds) for callers to render a user-facing message; none are meant to be
// silently swallowed.
package errs
