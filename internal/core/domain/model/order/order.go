package order

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when creating an order with no line items.
	ErrItemsAreRequired = errors.New("order must have at least one line item")
)

// Order represents a purchase order in the procurement system. It is the
// aggregate root owning the line items to be fulfilled by deliveries.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning company identifier
//   - Line items are fixed at placement time and never mutated afterwards
//   - ApprovalState transitions follow the approve/reject workflow
//   - FulfillmentStatus and the denormalized delivered total are written only
//     by reconciliation (ApplyReconciliation), never edited directly
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// companyID identifies the owning tenant
	companyID kernel.UUID

	// items are the line items fixed at placement time
	items []Item

	// approvalState is the approve/reject workflow state
	approvalState ApprovalState

	// fulfillmentStatus is the delivery-derived status
	fulfillmentStatus FulfillmentStatus

	// quantityDelivered is the capped delivered total across all lines,
	// denormalized by reconciliation
	quantityDelivered kernel.Quantity

	// updatedAt is bumped whenever reconciliation writes the order
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation. Orders start in
// PendingApproval with fulfillment Pending and a zero delivered total.
//
// Parameters:
//   - id: unique identifier for the order
//   - companyID: identifier of the owning company
//   - items: the order lines; at least one is required, and each must be a
//     valid Item
//
// Returns the created order, or a validation error if any parameter is
// invalid.
func NewOrder(id kernel.UUID, companyID kernel.UUID, items []Item) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := companyID.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                id,
		companyID:         companyID,
		items:             append([]Item(nil), items...),
		approvalState:     PendingApproval,
		fulfillmentStatus: Pending,
		quantityDelivered: kernel.ZeroQuantity(),
		updatedAt:         time.Now().UTC(),
		isConstructed:     true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// Unlike NewOrder it accepts an empty item set: legacy rows created before
// line items were mandatory still have to reconcile (to a deterministic
// Pending), not error.
func RestoreOrder(
	id kernel.UUID,
	companyID kernel.UUID,
	items []Item,
	approvalState ApprovalState,
	fulfillmentStatus FulfillmentStatus,
	quantityDelivered kernel.Quantity,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		companyID.Validate(),
		approvalState.Validate(),
		fulfillmentStatus.Validate(),
		quantityDelivered.Validate(),
	); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                id,
		companyID:         companyID,
		items:             append([]Item(nil), items...),
		approvalState:     approvalState,
		fulfillmentStatus: fulfillmentStatus,
		quantityDelivered: quantityDelivered,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CompanyID returns the identifier of the owning company.
func (o *Order) CompanyID() kernel.UUID {
	return o.companyID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// ApprovalState returns the current approve/reject workflow state.
func (o *Order) ApprovalState() ApprovalState {
	return o.approvalState
}

// FulfillmentStatus returns the delivery-derived status of the order.
func (o *Order) FulfillmentStatus() FulfillmentStatus {
	return o.fulfillmentStatus
}

// QuantityDelivered returns the denormalized capped delivered total last
// written by reconciliation.
func (o *Order) QuantityDelivered() kernel.Quantity {
	return o.quantityDelivered
}

// UpdatedAt returns the time of the last reconciliation write.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TotalOrdered sums the ordered quantities across all line items.
func (o *Order) TotalOrdered() kernel.Quantity {
	total := kernel.ZeroQuantity()
	for _, item := range o.items {
		total = total.Add(item.Quantity())
	}
	return total
}

// Approve moves the order from PendingApproval to Approved.
// Returns an error if the order is not awaiting approval.
func (o *Order) Approve() error {
	newState, err := o.approvalState.Approve()
	if err != nil {
		return err
	}

	o.approvalState = newState
	return nil
}

// Reject moves the order from PendingApproval to Rejected.
// Returns an error if the order is not awaiting approval.
func (o *Order) Reject() error {
	newState, err := o.approvalState.Reject()
	if err != nil {
		return err
	}

	o.approvalState = newState
	return nil
}

// ApplyReconciliation records the outcome of a reconciliation run: the
// derived fulfillment status, the capped delivered total, and the run
// timestamp. This is the only mutation path for these fields.
//
// Reconciliation derives its status from scratch each run, so any valid
// status may replace any other; there is no transition table here.
func (o *Order) ApplyReconciliation(
	status FulfillmentStatus,
	totalDelivered kernel.Quantity,
	at time.Time,
) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := totalDelivered.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}

	o.fulfillmentStatus = status
	o.quantityDelivered = totalDelivered
	o.updatedAt = at
	return nil
}
