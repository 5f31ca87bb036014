package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrMarkDeliveryDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveryDeliveredCommand must be created via NewMarkDeliveryDeliveredCommand constructor",
)

// MarkDeliveryDeliveredCommand represents a request to confirm that a
// delivery arrived at the construction site.
type MarkDeliveryDeliveredCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveryDeliveredCommand creates a command to confirm the given delivery.
func NewMarkDeliveryDeliveredCommand(deliveryID kernel.UUID) (MarkDeliveryDeliveredCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return MarkDeliveryDeliveredCommand{}, err
	}

	return MarkDeliveryDeliveredCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveryDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveryDeliveredCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to confirm.
func (c MarkDeliveryDeliveredCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
