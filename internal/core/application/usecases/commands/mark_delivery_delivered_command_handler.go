package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"
)

// MarkDeliveryDeliveredCommandHandler handles the business logic for
// confirming delivery arrival.
type MarkDeliveryDeliveredCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewMarkDeliveryDeliveredCommandHandler creates a handler for delivery confirmation.
func NewMarkDeliveryDeliveredCommandHandler(uowFactory DeliveryUoWFactory) MarkDeliveryDeliveredCommandHandler {
	return MarkDeliveryDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command and returns the identifier of
// the order the delivery belongs to, so callers can trigger reconciliation
// for that order afterwards.
func (h *MarkDeliveryDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkDeliveryDeliveredCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = aggregate.MarkDelivered(time.Now().UTC()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.OrderID(), nil
}
