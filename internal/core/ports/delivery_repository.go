package ports

import (
	"context"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate, including its lines.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// Lines are immutable after recording; only the delivery record itself
	// (status, delivered-at) is written.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate with its lines by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetDeliveredByOrder retrieves all deliveries for the given order that
	// have reached Delivered status, including their lines. These are the
	// reconciliation inputs for that order.
	GetDeliveredByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error)
}
