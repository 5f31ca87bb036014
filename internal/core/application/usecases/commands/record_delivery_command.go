package commands

import (
	"errors"

	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var (
	ErrRecordDeliveryCommandIsNotConstructed = errors.New(
		"RecordDeliveryCommand must be created via NewRecordDeliveryCommand constructor",
	)
	ErrDeliveryItemsAreRequired = errors.New("at least one delivery line item is required")
)

// RecordDeliveryCommand represents a request to record a delivery of goods
// against an existing purchase order. The delivery starts in Pending status;
// its items only count toward the order's fulfillment once it is marked
// delivered.
//
// Example:
//
//	items := []delivery.Item{cementLine}
//	cmd, err := NewRecordDeliveryCommand(kernel.NewUUID(), orderID, items)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewRecordDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record delivery: %w", err)
//	}
type RecordDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	orderID    kernel.UUID
	items      []delivery.Item

	guard guard.ConstructorGuard
}

// NewRecordDeliveryCommand creates a command to record a new delivery.
// Validates that both identifiers are valid and that at least one valid line
// item is supplied.
func NewRecordDeliveryCommand(
	deliveryID kernel.UUID,
	orderID kernel.UUID,
	items []delivery.Item,
) (RecordDeliveryCommand, error) {
	deliveryCommand := RecordDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryCommand.setDeliveryID(deliveryID),
		deliveryCommand.setOrderID(orderID),
		deliveryCommand.setItems(items),
	); err != nil {
		return RecordDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the delivery.
func (c RecordDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the identifier of the order being fulfilled.
func (c RecordDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the delivery line items.
func (c RecordDeliveryCommand) Items() []delivery.Item {
	return append([]delivery.Item(nil), c.items...)
}

func (c *RecordDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *RecordDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordDeliveryCommand) setItems(items []delivery.Item) error {
	if len(items) == 0 {
		return ErrDeliveryItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]delivery.Item(nil), items...)
	return nil
}
