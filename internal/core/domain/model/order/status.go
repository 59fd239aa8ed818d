package order

import (
	"fmt"
	"strings"

	"commerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	New ──> Confirmed ──> Packed ──> Shipped ──> Delivered
//	 │          │           │           │
//	 └──────────┴─────┬─────┴───────────┘
//	                  ├──> Cancelled
//	                  └──> Returned
//
// Forward progression is linear, one step at a time. Cancelled and Returned
// are terminal exits reachable from any non-terminal state. Delivered,
// Cancelled, and Returned have no outgoing transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status when an order is first placed.
	StatusNew

	// StatusConfirmed indicates the order has been accepted for fulfillment.
	// The delivery record is created when an order enters this status.
	StatusConfirmed

	// StatusPacked indicates the order items have been packed for dispatch.
	StatusPacked

	// StatusShipped indicates the order has been handed to the delivery partner.
	StatusShipped

	// StatusDelivered indicates the order has reached the customer.
	// This is a terminal state.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before completion.
	// This is a terminal state.
	StatusCancelled

	// StatusReturned indicates the order was returned by the customer.
	// This is a terminal state.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusNew:       "New",
		StatusConfirmed: "Confirmed",
		StatusPacked:    "Packed",
		StatusShipped:   "Shipped",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
		StatusReturned:  "Returned",
	}
}

// nextForward maps each state to its single legal forward successor.
func nextForward() map[Status]Status {
	return map[Status]Status{
		StatusNew:       StatusConfirmed,
		StatusConfirmed: StatusPacked,
		StatusPacked:    StatusShipped,
		StatusShipped:   StatusDelivered,
	}
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name, ignoring case.
// Returns a ValueIsInvalidError for unknown names and for "Unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && strings.EqualFold(s, name) {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined order states.
// StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < StatusNew || s > StatusReturned {
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status has no outgoing transitions.
// Delivered, Cancelled, and Returned are terminal.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusReturned
}

// CanTransitionTo reports whether the edge from s to target is in the
// allowed transition set: the single forward successor of s, or a terminal
// exit (Cancelled/Returned) from any non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == StatusCancelled || target == StatusReturned {
		return true
	}
	return nextForward()[s] == target
}

// TransitionTo returns the target status when the edge is legal.
// Returns an InvalidTransitionError (and leaves the caller's state untouched)
// for any pair outside the allowed edge set, including backward moves and
// exits from terminal states.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError("order", s.String(), target.String())
	}
	return target, nil
}
