package order

import (
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// FulfillmentStatus represents how far an order has been fulfilled by
// delivered deliveries. Unlike ApprovalState it is not advanced by explicit
// transitions: it is derived from scratch on every reconciliation run via
// DeriveFulfillmentStatus, so re-running reconciliation with unchanged
// deliveries always produces the same status.
type FulfillmentStatus int

const (
	// FulfillmentUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized FulfillmentStatus values.
	FulfillmentUnknown FulfillmentStatus = iota

	// Pending means nothing has been delivered against the order yet.
	Pending

	// Partial means some, but not all, of the ordered quantities have arrived.
	Partial

	// Completed means every line's ordered quantity is covered by deliveries.
	Completed
)

func getFulfillmentStatusStrings() map[FulfillmentStatus]string {
	return map[FulfillmentStatus]string{
		FulfillmentUnknown: "Unknown",
		Pending:            "Pending",
		Partial:            "Partial",
		Completed:          "Completed",
	}
}

func getValidFulfillmentStatusStrings() map[FulfillmentStatus]string {
	//nolint:exhaustive // FulfillmentUnknown is intentionally excluded as it's invalid
	return map[FulfillmentStatus]string{
		Pending:   "Pending",
		Partial:   "Partial",
		Completed: "Completed",
	}
}

// DeriveFulfillmentStatus computes the status for the given totals with
// strict precedence: zero delivered is Pending, delivered covering the
// ordered total is Completed, anything in between is Partial.
//
// An order with nothing ordered (no lines, or all-zero lines) derives
// Pending. The zero check runs first, so the degenerate 0/0 case never
// reports Completed.
func DeriveFulfillmentStatus(totalOrdered, totalDelivered kernel.Quantity) FulfillmentStatus {
	switch {
	case totalDelivered.IsZero():
		return Pending
	case totalDelivered.GreaterThanOrEqual(totalOrdered):
		return Completed
	default:
		return Partial
	}
}

// Validate checks if the FulfillmentStatus value is valid.
// Valid statuses are Pending, Partial, and Completed.
func (s FulfillmentStatus) Validate() error {
	if _, ok := getValidFulfillmentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"fulfillment status is invalid",
			fmt.Errorf("%d is not a valid fulfillment status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s FulfillmentStatus) String() string {
	if str, ok := getFulfillmentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Color returns the color token dashboards use for the status.
// The gray fallback is unreachable for validated statuses but kept for safety.
func (s FulfillmentStatus) Color() string {
	switch s {
	case Pending:
		return "yellow"
	case Partial:
		return "blue"
	case Completed:
		return "green"
	default:
		return "gray"
	}
}

// Label returns the human-facing label for the status.
func (s FulfillmentStatus) Label() string {
	switch s {
	case Pending:
		return "Pending"
	case Partial:
		return "Partially Delivered"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// BadgeClasses returns the CSS class string for rendering the status badge.
func (s FulfillmentStatus) BadgeClasses() string {
	switch s.Color() {
	case "yellow":
		return "bg-yellow-100 text-yellow-800 border-yellow-200"
	case "blue":
		return "bg-blue-100 text-blue-800 border-blue-200"
	case "green":
		return "bg-green-100 text-green-800 border-green-200"
	default:
		return "bg-gray-100 text-gray-800 border-gray-200"
	}
}
