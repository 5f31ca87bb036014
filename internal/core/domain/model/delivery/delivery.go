package delivery

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery or RestoreDelivery factory methods.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrItemsAreRequired is returned when recording a delivery with no lines.
	ErrItemsAreRequired = errors.New("delivery must have at least one line item")
)

// Delivery represents goods delivered against a purchase order. It is an
// aggregate root with its own lifecycle status; the order it belongs to is
// referenced by id only.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier and order identifier
//   - Line items are fixed at recording time and never mutated afterwards
//   - Status transitions follow Pending -> InTransit -> Delivered, with
//     Delivered reachable directly from Pending and final once reached
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// orderID identifies the order the goods were delivered against
	orderID kernel.UUID

	// items are the delivered lines fixed at recording time
	items []Item

	// status is the current lifecycle state
	status Status

	// deliveredAt is set when the delivery reaches Delivered
	deliveredAt *time.Time

	// isConstructed ensures the delivery was created via a factory method
	isConstructed bool
}

// NewDelivery records a new delivery in Pending status.
//
// Parameters:
//   - id: unique identifier for the delivery
//   - orderID: identifier of the order being fulfilled
//   - items: the delivered lines; at least one is required, and each must be
//     a valid Item
func NewDelivery(id kernel.UUID, orderID kernel.UUID, items []Item) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
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

	return &Delivery{
		id:            id,
		orderID:       orderID,
		items:         append([]Item(nil), items...),
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	items []Item,
	status Status,
	deliveredAt *time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		id:            id,
		orderID:       orderID,
		items:         append([]Item(nil), items...),
		status:        status,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Delivery instance was properly constructed through a
// factory method.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order the delivery fulfills.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Items returns a copy of the delivery's lines.
func (d *Delivery) Items() []Item {
	return append([]Item(nil), d.items...)
}

// Status returns the current lifecycle state of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// DeliveredAt returns the time the delivery reached Delivered, or nil if it
// has not.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// IsDelivered reports whether the delivery has reached the Delivered state
// and therefore counts toward reconciliation.
func (d *Delivery) IsDelivered() bool {
	return d.status == Delivered
}

// Dispatch marks the delivery as in transit.
// Returns an error if the delivery is not Pending.
func (d *Delivery) Dispatch() error {
	newStatus, err := d.status.Dispatch()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// MarkDelivered marks the delivery as arrived at the given time. From this
// point on its items are eligible inputs to every reconciliation run for the
// order. Returns an error if the delivery is already Delivered.
func (d *Delivery) MarkDelivered(at time.Time) error {
	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.deliveredAt = &at
	return nil
}
