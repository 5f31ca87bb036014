// Package jobs provides scheduled background tasks for the procurement system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the procurement service.
//
// # Available Jobs
//
// 1. ReconciliationSweepJob - Runs every minute to recompute fulfillment for all open orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(openOrdersHandler, reconcileHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "0 * * * * *" which means it runs at the
// top of every minute. Per-order reconciliation is already triggered when a
// delivery is confirmed; the sweep only catches up orders whose status write
// failed or that were changed outside the API.
//
// # Error Handling
//
// Sweep failures are logged and never abort the remaining orders in the pass.
package jobs
