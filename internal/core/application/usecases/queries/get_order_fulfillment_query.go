package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"
)

var ErrGetOrderFulfillmentQueryIsNotConstructed = errors.New(
	"GetOrderFulfillmentQuery must be created via NewGetOrderFulfillmentQuery constructor",
)

// GetOrderFulfillmentQuery retrieves the fulfillment breakdown of a single
// order: per-line ordered versus delivered quantities plus overall progress.
//
// Example:
//
//	query, err := NewGetOrderFulfillmentQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
//
//	handler := NewGetOrderFulfillmentQueryHandler(db)
//	fulfillment, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get fulfillment: %w", err)
//	}
//
//	fmt.Printf("Order %s is %.0f%% complete\n",
//	    fulfillment.OrderID, fulfillment.PercentComplete)
type GetOrderFulfillmentQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderFulfillmentQuery creates a query for the given order.
func NewGetOrderFulfillmentQuery(orderID kernel.UUID) (GetOrderFulfillmentQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderFulfillmentQuery{}, err
	}

	return GetOrderFulfillmentQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderFulfillmentQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderFulfillmentQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to inspect.
func (q GetOrderFulfillmentQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderFulfillmentItemResponse represents one order line with the raw
// delivered quantity recorded against it. Delivered may exceed Ordered when
// suppliers over-ship; overall progress caps each line at its ordered
// quantity.
type OrderFulfillmentItemResponse struct {
	ProductName string
	Unit        string
	Ordered     kernel.Quantity
	Delivered   kernel.Quantity
}

// GetOrderFulfillmentQueryResponse represents the fulfillment state of an
// order for dashboard display.
type GetOrderFulfillmentQueryResponse struct {
	OrderID         kernel.UUID
	Status          order.FulfillmentStatus
	TotalOrdered    kernel.Quantity
	TotalDelivered  kernel.Quantity
	PercentComplete float64
	Items           []OrderFulfillmentItemResponse
}
