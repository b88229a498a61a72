package jobs

import (
	"fmt"
)

// JobManager coordinates the background machinery of the order lifecycle.
// Provides a unified interface to start and stop the worker pool and the
// recovery sweep in the right order.
type JobManager struct {
	processorPool *OrderProcessorPool
	stuckSweepJob *StuckOrderSweepJob
}

// NewJobManager creates a job manager over the already-constructed jobs.
func NewJobManager(processorPool *OrderProcessorPool, stuckSweepJob *StuckOrderSweepJob) *JobManager {
	return &JobManager{
		processorPool: processorPool,
		stuckSweepJob: stuckSweepJob,
	}
}

// StartAll starts the worker pool first so the sweep never dispatches into a
// dead queue. Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.processorPool.Start(); err != nil {
		return fmt.Errorf("failed to start order processor pool: %w", err)
	}

	if err := jm.stuckSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.processorPool.Stop()
		return fmt.Errorf("failed to start stuck order sweep job: %w", err)
	}

	return nil
}

// StopAll stops the sweep before the pool so no new tasks arrive while the
// workers drain.
func (jm *JobManager) StopAll() {
	jm.stuckSweepJob.Stop()
	jm.processorPool.Stop()
}
