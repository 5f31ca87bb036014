package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrMarkDeliveryInTransitCommandIsNotConstructed = errors.New(
	"MarkDeliveryInTransitCommand must be created via NewMarkDeliveryInTransitCommand constructor",
)

// MarkDeliveryInTransitCommand represents a request to dispatch a pending
// delivery to the construction site.
type MarkDeliveryInTransitCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveryInTransitCommand creates a command to dispatch the given delivery.
func NewMarkDeliveryInTransitCommand(deliveryID kernel.UUID) (MarkDeliveryInTransitCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return MarkDeliveryInTransitCommand{}, err
	}

	return MarkDeliveryInTransitCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveryInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveryInTransitCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to dispatch.
func (c MarkDeliveryInTransitCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
