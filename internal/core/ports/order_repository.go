package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate, including its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Line items are immutable after placement; only the order record itself
	// (approval state, fulfillment status, delivered total, timestamp) is
	// written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items by unique
	// identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUncompleted retrieves all orders whose fulfillment status is not
	// Completed. Used by the reconciliation sweep and list views.
	GetAllUncompleted(ctx context.Context) ([]*order.Order, error)
}
