package commands

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// ProcessOrderCommandHandler runs the asynchronous lifecycle transition for a
// single order: Pending -> Processing, a fixed processing delay simulating
// work, then Processing -> Completed.
//
// The handler is status-aware so re-dispatch is safe:
//   - Pending orders go through the full transition
//   - Processing orders (a previous task died mid-delay) skip straight to the
//     delay and completion
//   - Completed orders are left untouched
//
// An order that no longer exists is tolerated silently: the task simply
// returns without error. Each status write is its own transaction; a crash
// between the two writes leaves the order in Processing, which the recovery
// sweep repairs on the next pass.
type ProcessOrderCommandHandler struct {
	uowFactory      OrderUoWFactory
	processingDelay time.Duration
}

// NewProcessOrderCommandHandler creates a handler for order processing.
// The processing delay paces the Processing -> Completed transition.
func NewProcessOrderCommandHandler(
	uowFactory OrderUoWFactory,
	processingDelay time.Duration,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory:      uowFactory,
		processingDelay: processingDelay,
	}
}

// Handle executes the lifecycle transition for the order named by the command.
// Returns nil when the order is absent or already completed.
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	started, err := h.startProcessing(ctx, cmd.OrderID())
	if err != nil || !started {
		return err
	}

	select {
	case <-time.After(h.processingDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	return h.complete(ctx, cmd.OrderID())
}

// startProcessing moves a Pending order to Processing in its own transaction.
// Returns (false, nil) when there is nothing left to do for this order:
// it is absent or already completed. Returns (true, nil) when the caller
// should proceed to the delay and completion step.
func (h *ProcessOrderCommandHandler) startProcessing(ctx context.Context, orderID int64) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	switch aggregate.Status() {
	case order.Completed:
		return false, nil
	case order.Processing:
		// A previous task died mid-delay; skip the first transition.
		return true, nil
	default:
	}

	if err = aggregate.StartProcessing(); err != nil {
		return false, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

// complete moves a Processing order to Completed in its own transaction.
// Tolerates the order having disappeared or having been completed meanwhile.
func (h *ProcessOrderCommandHandler) complete(ctx context.Context, orderID int64) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if aggregate.Status() == order.Completed {
		return nil
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
