package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StuckOrderSweepJob periodically re-dispatches orders whose processing never
// finished. An order left Pending because the queue was full, or stranded in
// Processing by a crash, is older than the grace period on the next sweep and
// gets queued again. Processing is idempotent, so a duplicate dispatch for an
// order that completed in the meantime is a no-op.
type StuckOrderSweepJob struct {
	uowFactory  ports.UnitOfWorkFactory
	dispatcher  ports.TaskDispatcher
	schedule    string
	gracePeriod time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewStuckOrderSweepJob creates the recovery sweep. The schedule is a cron
// expression with a seconds field; the grace period defines how stale an
// unfinished order must be before it is re-dispatched.
func NewStuckOrderSweepJob(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher ports.TaskDispatcher,
	schedule string,
	gracePeriod time.Duration,
	logger *slog.Logger,
) *StuckOrderSweepJob {
	return &StuckOrderSweepJob{
		uowFactory:  uowFactory,
		dispatcher:  dispatcher,
		schedule:    schedule,
		gracePeriod: gracePeriod,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "stuck_order_sweep_job"),
	}
}

// Start begins the sweep on its configured schedule.
func (j *StuckOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stuck order sweep job started",
		"schedule", j.schedule, "grace_period", j.gracePeriod)
	return nil
}

// Stop stops the sweep job.
func (j *StuckOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stuck order sweep job stopped")
}

func (j *StuckOrderSweepJob) sweep() {
	ctx := context.Background()

	uow := j.uowFactory.Create()
	cutoff := time.Now().Add(-j.gracePeriod)

	stuck, err := uow.OrderRepository().GetUnfinishedBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load unfinished orders", "error", err)
		return
	}

	for _, stuckOrder := range stuck {
		if err := j.dispatcher.Dispatch(stuckOrder.ID()); err != nil {
			// The queue is saturated; the next sweep retries.
			j.logger.WarnContext(ctx, "Failed to re-dispatch stuck order",
				"order_id", stuckOrder.ID(), "error", err)
			return
		}
		j.logger.InfoContext(ctx, "Re-dispatched stuck order",
			"order_id", stuckOrder.ID(), "status", stuckOrder.Status().String())
	}
}
