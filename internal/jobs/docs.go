// Package jobs provides the background machinery for the order lifecycle.
//
// Two cooperating pieces run behind the HTTP surface:
//
//  1. OrderProcessorPool - a fixed set of workers draining a buffered task
//     queue; each task drives one order from Pending through Processing to
//     Completed
//  2. StuckOrderSweepJob - a cron-based sweep (github.com/robfig/cron/v3)
//     that re-dispatches orders whose processing was lost to a full queue
//     or a crash
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	pool := jobs.NewOrderProcessorPool(processHandler, workers, queueSize, logger)
//	sweep := jobs.NewStuckOrderSweepJob(uowFactory, pool, schedule, gracePeriod, logger)
//	jobManager := jobs.NewJobManager(pool, sweep)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Dispatch against a full queue is reported to the caller; the order stays
// Pending until the next sweep
// - Processing is idempotent, so duplicate dispatches are harmless
// - Failed job starts will stop any already running jobs
package jobs
