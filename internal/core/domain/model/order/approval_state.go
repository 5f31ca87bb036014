package order

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// ApprovalState represents the approve/reject workflow state of an order.
// It is entirely independent from FulfillmentStatus: an approved order may
// still be awaiting its first delivery, and fulfillment never feeds back into
// approval.
//
// State transitions:
//
//	PendingApproval ──┬──> Approved
//	                  └──> Rejected
//
// Both Approved and Rejected are final states.
type ApprovalState int

const (
	// ApprovalUnknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized ApprovalState values.
	ApprovalUnknown ApprovalState = iota

	// PendingApproval is the initial state when an order is first placed.
	PendingApproval

	// Approved indicates the order has been accepted for fulfillment.
	Approved

	// Rejected indicates the order was declined. Final state.
	Rejected
)

func getApprovalStateStrings() map[ApprovalState]string {
	return map[ApprovalState]string{
		ApprovalUnknown: "Unknown",
		PendingApproval: "PendingApproval",
		Approved:        "Approved",
		Rejected:        "Rejected",
	}
}

func getValidApprovalStateStrings() map[ApprovalState]string {
	//nolint:exhaustive // ApprovalUnknown is intentionally excluded as it's invalid
	return map[ApprovalState]string{
		PendingApproval: "PendingApproval",
		Approved:        "Approved",
		Rejected:        "Rejected",
	}
}

// Validate checks if the ApprovalState value is valid.
// Valid states are PendingApproval, Approved, and Rejected.
func (s ApprovalState) Validate() error {
	if _, ok := getValidApprovalStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"approval state is invalid",
			fmt.Errorf("%d is not a valid approval state", s),
		)
	}
	return nil
}

// String returns the human-readable name of the state.
// Implements fmt.Stringer; safe to call on any value.
func (s ApprovalState) String() string {
	if str, ok := getApprovalStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Approve transitions the state to Approved.
//
// Valid transitions:
//   - PendingApproval -> Approved
//
// Returns (0, error) if the order is not awaiting approval.
func (s ApprovalState) Approve() (ApprovalState, error) {
	if s != PendingApproval {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"approval state is invalid",
			fmt.Errorf("%s is not a valid state to approve", s.String()),
		)
	}
	return Approved, nil
}

// Reject transitions the state to Rejected.
//
// Valid transitions:
//   - PendingApproval -> Rejected
//
// Returns (0, error) if the order is not awaiting approval.
func (s ApprovalState) Reject() (ApprovalState, error) {
	if s != PendingApproval {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"approval state is invalid",
			fmt.Errorf("%s is not a valid state to reject", s.String()),
		)
	}
	return Rejected, nil
}
