package commands

import (
	"context"

	"procurement/internal/core/domain/model/delivery"
)

// RecordDeliveryCommandHandler handles the business logic for recording
// deliveries against purchase orders.
type RecordDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewRecordDeliveryCommandHandler creates a handler for delivery recording.
// Requires a UoWFactory because the handler touches both aggregates: the
// order is loaded to verify it exists before the delivery row is written.
func NewRecordDeliveryCommandHandler(uowFactory UoWFactory) RecordDeliveryCommandHandler {
	return RecordDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery recording command.
// The referenced order must exist; the delivery is persisted in Pending
// status within a transaction.
func (h *RecordDeliveryCommandHandler) Handle(ctx context.Context, cmd RecordDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	aggregate, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.OrderID(), cmd.Items())
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
