package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
)

// ReconcileOrderResult carries the outcome of a reconciliation run.
// Report is always populated on success; Persisted tells whether the
// recomputed status reached the database. A failed write does not fail
// the reconciliation itself, the report stays valid and PersistErr
// records what went wrong.
type ReconcileOrderResult struct {
	Report     services.ReconciliationReport
	Persisted  bool
	PersistErr error
}

// ReconcileOrderCommandHandler handles the business logic for recomputing
// order fulfillment from delivered deliveries.
type ReconcileOrderCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.Reconciler
	logger     *slog.Logger
}

// NewReconcileOrderCommandHandler creates a handler for order reconciliation.
func NewReconcileOrderCommandHandler(
	uowFactory UoWFactory,
	reconciler services.Reconciler,
	logger *slog.Logger,
) ReconcileOrderCommandHandler {
	return ReconcileOrderCommandHandler{
		uowFactory: uowFactory,
		reconciler: reconciler,
		logger:     logger,
	}
}

// Handle recomputes the fulfillment report for the order and attempts to
// persist the derived status back to the order record. Read failures abort
// the run; a write failure is reported through the result instead of an
// error so callers still receive the computed report.
func (h *ReconcileOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileOrderCommand,
) (ReconcileOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcileOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReconcileOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return ReconcileOrderResult{}, fmt.Errorf("failed to fetch order items: %w", err)
	}

	deliveries, err := uow.DeliveryRepository().GetDeliveredByOrder(ctx, cmd.OrderID())
	if err != nil {
		return ReconcileOrderResult{}, fmt.Errorf("failed to fetch deliveries: %w", err)
	}

	report, err := h.reconciler.Reconcile(aggregate, deliveries)
	if err != nil {
		return ReconcileOrderResult{}, err
	}

	result := ReconcileOrderResult{Report: report}

	if err = h.persist(ctx, uow, aggregate, report); err != nil {
		result.PersistErr = err
		h.logger.Warn("reconciliation status write failed",
			"order_id", cmd.OrderID().String(),
			"error", err)

		return result, nil
	}

	result.Persisted = true

	return result, nil
}

func (h *ReconcileOrderCommandHandler) persist(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	report services.ReconciliationReport,
) error {
	if err := aggregate.ApplyReconciliation(report.Status, report.TotalDelivered, time.Now().UTC()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
