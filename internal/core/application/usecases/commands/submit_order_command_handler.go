package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// SubmitOrderCommandHandler handles the business logic for order submission.
// Persists the order in Pending status and hands its id to the task
// dispatcher for asynchronous lifecycle processing.
//
// The dispatch happens after the transaction commits, and the handler never
// waits for the processing task: the caller always observes the freshly
// created order in Pending status even though processing may already have
// been scheduled.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.TaskDispatcher
	logger     *slog.Logger
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
// Requires an OrderUoWFactory for transactional persistence and a
// TaskDispatcher for the asynchronous processing handoff.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.TaskDispatcher,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger.With("component", "submit_order_handler"),
	}
}

// Handle processes the order submission command.
// Creates the order in Pending status inside a transaction, then schedules
// exactly one processing task for it. Returns the created order immediately.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OwnerID(), cmd.ItemName(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// The order is durable at this point. A dispatch failure leaves it in
	// Pending until the recovery sweep or a resubmission picks it up, so it
	// is logged rather than surfaced as a submission failure.
	if err = h.dispatcher.Dispatch(newOrder.ID()); err != nil {
		h.logger.ErrorContext(ctx, "Failed to dispatch processing task",
			"order_id", newOrder.ID(), "error", err)
	}

	return newOrder, nil
}
