package commands

import "context"

// MarkDeliveryInTransitCommandHandler handles the business logic for
// dispatching deliveries.
type MarkDeliveryInTransitCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewMarkDeliveryInTransitCommandHandler creates a handler for delivery dispatch.
func NewMarkDeliveryInTransitCommandHandler(uowFactory DeliveryUoWFactory) MarkDeliveryInTransitCommandHandler {
	return MarkDeliveryInTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command. The delivery must be in Pending
// status for the transition to succeed.
func (h *MarkDeliveryInTransitCommandHandler) Handle(ctx context.Context, cmd MarkDeliveryInTransitCommand) error {
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

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.Dispatch(); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
