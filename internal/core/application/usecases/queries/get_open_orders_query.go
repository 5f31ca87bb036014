// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read
// directly from the database and return plain response structs, bypassing
// the domain aggregates.
package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves all orders that still await goods.
// Returns orders whose fulfillment status is Pending or Partial, for
// procurement dashboards and the reconciliation sweep.
//
// Example:
//
//	query := NewGetOpenOrdersQuery()
//	handler := NewGetOpenOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//
//	fmt.Printf("Found %d open orders\n", len(orders))
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query to retrieve open orders.
// This is a parameterless query that fetches all non-completed orders.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenOrdersQueryIsNotConstructed if validation fails.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse represents an open order summary row.
type GetOpenOrdersQueryResponse struct {
	ID                kernel.UUID
	CompanyID         kernel.UUID
	ApprovalState     order.ApprovalState
	FulfillmentStatus order.FulfillmentStatus
	QuantityDelivered kernel.Quantity
	UpdatedAt         time.Time
}
