package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"orders/internal/core/application/usecases/commands"
)

// ErrQueueFull reports that the processing queue rejected a task.
var ErrQueueFull = errors.New("order processing queue is full")

// ErrPoolStopped reports a dispatch attempt against a stopped pool.
var ErrPoolStopped = errors.New("order processor pool is not running")

// OrderProcessorPool runs order lifecycle tasks on a fixed set of workers.
// Submitted order ids are queued on a buffered channel; each worker drains
// the queue and drives one order at a time through its status transitions.
// Implements ports.TaskDispatcher.
type OrderProcessorPool struct {
	handler commands.ProcessOrderCommandHandler
	tasks   chan int64
	workers int
	logger  *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewOrderProcessorPool creates a pool with the given worker count and queue
// capacity. The pool does not run until Start is called.
func NewOrderProcessorPool(
	handler commands.ProcessOrderCommandHandler,
	workers int,
	queueSize int,
	logger *slog.Logger,
) *OrderProcessorPool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = workers
	}
	return &OrderProcessorPool{
		handler: handler,
		tasks:   make(chan int64, queueSize),
		workers: workers,
		logger:  logger.With("component", "order_processor_pool"),
	}
}

// Start launches the worker goroutines.
func (p *OrderProcessorPool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.running = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.logger.InfoContext(ctx, "Order processor pool started", "workers", p.workers, "queue_size", cap(p.tasks))
	return nil
}

// Stop signals all workers to finish and waits for them to drain.
// Tasks still sitting in the queue are abandoned; the recovery sweep
// re-dispatches their orders after restart.
func (p *OrderProcessorPool) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.cancel()
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.InfoContext(context.Background(), "Order processor pool stopped")
}

// Dispatch queues an order for asynchronous processing without blocking.
// A full queue is reported to the caller; the order stays Pending and the
// recovery sweep picks it up later.
func (p *OrderProcessorPool) Dispatch(orderID int64) error {
	p.mu.Lock()
	running := p.running
	p.mu.Unlock()

	if !running {
		return ErrPoolStopped
	}

	select {
	case p.tasks <- orderID:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *OrderProcessorPool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	logger := p.logger.With("worker", id)
	for {
		select {
		case <-ctx.Done():
			return
		case orderID := <-p.tasks:
			p.process(ctx, logger, orderID)
		}
	}
}

func (p *OrderProcessorPool) process(ctx context.Context, logger *slog.Logger, orderID int64) {
	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err != nil {
		logger.ErrorContext(ctx, "Invalid order id in processing queue", "order_id", orderID, "error", err)
		return
	}

	if err := p.handler.Handle(ctx, cmd); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		logger.ErrorContext(ctx, "Order processing failed", "order_id", orderID, "error", err)
	}
}
