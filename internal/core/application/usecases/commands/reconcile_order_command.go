package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrReconcileOrderCommandIsNotConstructed = errors.New(
	"ReconcileOrderCommand must be created via NewReconcileOrderCommand constructor",
)

// ReconcileOrderCommand represents a request to recompute the fulfillment
// status of an order from its delivered deliveries.
type ReconcileOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReconcileOrderCommand creates a command to reconcile the given order.
func NewReconcileOrderCommand(orderID kernel.UUID) (ReconcileOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReconcileOrderCommand{}, err
	}

	return ReconcileOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileOrderCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to reconcile.
func (c ReconcileOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
