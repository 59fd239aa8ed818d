package delivery

import (
	"fmt"
	"strings"

	"commerce/internal/pkg/errs"
)

// Status represents the fulfillment state of a delivery.
// It implements a state machine over the canonical ordered progression:
//
//	Pending ──> Assigned ──> Picked ──> InTransit ──> Delivered
//	    │           │           │            │
//	    └───────────┴─────┬─────┴────────────┘
//	                      └──> Failed
//
// Unlike the order lifecycle, forward jumps are allowed: a delivery can move
// from Pending straight to Delivered when intermediate scans are missed.
// Backward moves are rejected. Delivered and Failed are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status when the delivery record is created.
	StatusPending

	// StatusAssigned indicates a delivery partner has been assigned.
	StatusAssigned

	// StatusPicked indicates the partner has picked up the package.
	StatusPicked

	// StatusInTransit indicates the package is on its way to the customer.
	StatusInTransit

	// StatusDelivered indicates the package has been handed to the customer.
	// This is a terminal state and the only one that sets the delivery time.
	StatusDelivered

	// StatusFailed indicates the delivery attempt failed permanently.
	// This is a terminal state.
	StatusFailed
)

// orderedStatuses is the canonical progression used for the progress metric.
// Failed sits outside the progression.
func orderedStatuses() []Status {
	return []Status{StatusPending, StatusAssigned, StatusPicked, StatusInTransit, StatusDelivered}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusAssigned:  "Assigned",
		StatusPicked:    "Picked",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusFailed:    "Failed",
	}
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any value.
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
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined delivery states.
func (s Status) Validate() error {
	if s < StatusPending || s > StatusFailed {
		return errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed
}

// position returns the index of the status in the canonical progression,
// or -1 for Failed and invalid values.
func (s Status) position() int {
	for i, status := range orderedStatuses() {
		if status == s {
			return i
		}
	}
	return -1
}

// Progress returns the completion fraction in [0, 1] derived purely from the
// status position in the canonical ordering, so Delivered always yields 1.
// Failed and invalid statuses yield 0.
func (s Status) Progress() float64 {
	pos := s.position()
	if pos < 0 {
		return 0
	}
	return float64(pos+1) / float64(len(orderedStatuses()))
}

// CanTransitionTo reports whether the edge from s to target is allowed:
// any strictly forward move along the canonical ordering, or Failed from any
// non-terminal state. Terminal states have no outgoing edges.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == StatusFailed {
		return true
	}
	return target.position() > s.position()
}

// TransitionTo returns the target status when the edge is legal.
// Returns an InvalidTransitionError for backward moves, exits from terminal
// states, and invalid values, leaving the caller's state untouched.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError("delivery", s.String(), target.String())
	}
	return target, nil
}
