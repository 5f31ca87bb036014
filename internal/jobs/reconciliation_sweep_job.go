package jobs

import (
	"context"
	"log/slog"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ReconciliationSweepJob periodically recomputes fulfillment for every open
// order. It backstops the on-delivery reconciliation: a status write that
// failed there gets retried on the next sweep.
type ReconciliationSweepJob struct {
	openOrdersHandler queries.GetOpenOrdersQueryHandler
	reconcileHandler  commands.ReconcileOrderCommandHandler
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewReconciliationSweepJob creates a new job for sweeping open orders.
// Uses GetOpenOrdersQueryHandler to find candidates and
// ReconcileOrderCommandHandler to recompute each one every minute.
func NewReconciliationSweepJob(
	openOrdersHandler queries.GetOpenOrdersQueryHandler,
	reconcileHandler commands.ReconcileOrderCommandHandler,
	logger *slog.Logger,
) *ReconciliationSweepJob {
	return &ReconciliationSweepJob{
		openOrdersHandler: openOrdersHandler,
		reconcileHandler:  reconcileHandler,
		cron:              cron.New(cron.WithSeconds()),
		logger:            logger.With("component", "reconciliation_sweep_job"),
	}
}

// Start begins the reconciliation sweep job to run every minute.
func (j *ReconciliationSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		j.sweep(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation sweep job started (running every minute)")
	return nil
}

// Stop stops the reconciliation sweep job.
func (j *ReconciliationSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation sweep job stopped")
}

func (j *ReconciliationSweepJob) sweep(ctx context.Context) {
	openOrders, err := j.openOrdersHandler.Handle(ctx, queries.NewGetOpenOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Reconciliation sweep failed to list open orders", "error", err)
		return
	}

	for _, openOrder := range openOrders {
		cmd, cmdErr := commands.NewReconcileOrderCommand(openOrder.ID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Reconciliation sweep built invalid command",
				"order_id", openOrder.ID.String(), "error", cmdErr)
			continue
		}

		if _, handleErr := j.reconcileHandler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Reconciliation sweep failed for order",
				"order_id", openOrder.ID.String(), "error", handleErr)
		}
	}
}
