package delivery

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Pending ──┬──> InTransit ──> Delivered
//	          └─────────────────────^
//
// A delivery may be marked Delivered directly from Pending (goods that arrive
// without a tracked transit leg). Delivered is a final state: once reached,
// the delivery's items become eligible inputs to every subsequent
// reconciliation run for its order.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when a delivery is first recorded.
	Pending

	// InTransit indicates the goods have left the supplier.
	InTransit

	// Delivered indicates the goods have arrived on site. Final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		InTransit:     "InTransit",
		Delivered:     "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, InTransit, and Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Dispatch transitions the status to InTransit.
//
// Valid transitions:
//   - Pending -> InTransit
//
// Returns (0, error) for any other starting state.
func (s Status) Dispatch() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Pending -> Delivered
//   - InTransit -> Delivered
//
// Returns (0, error) for any other starting state.
func (s Status) Deliver() (Status, error) {
	if s != Pending && s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}
