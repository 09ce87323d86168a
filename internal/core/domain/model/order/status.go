package order

import (
	"fmt"

	"dealership/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The idealized flow is:
//
//	Pending ──> Processing ──> Confirmed ──> Shipped ──> Delivered
//
// with Cancelled and Refunded as additional terminal states. The system
// deliberately does not enforce a transition table: an authorized actor may
// move an order from any status to any other. All writes go through
// Order.ChangeStatus, so a transition table can later be introduced in one
// place without touching callers.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly created order.
	Pending

	// Processing indicates the order is being prepared.
	Processing

	// Confirmed indicates the order has been confirmed for fulfillment.
	Confirmed

	// Shipped indicates the vehicles have left the lot.
	Shipped

	// Delivered is the happy-path terminal state.
	Delivered

	// Cancelled is a terminal state reached when an order is called off.
	Cancelled

	// Refunded is a terminal state reached after the buyer is paid back.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Confirmed:  "confirmed",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
		Refunded:   "refunded",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Confirmed:  "confirmed",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
		Refunded:   "refunded",
	}
}

// StatusFromString parses one of the seven enumerated status names.
// Returns an error for any other input.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the seven valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is one from which, in the idealized
// model, no further transition is expected. Nothing enforces this today.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Refunded
}
