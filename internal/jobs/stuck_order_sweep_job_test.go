package jobs_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUnitOfWork adapts the in-memory store to the full unit of work port.
type fakeUnitOfWork struct {
	store *memoryOrderStore
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error          { return nil }
func (u *fakeUnitOfWork) Commit(_ context.Context) error         { return nil }
func (u *fakeUnitOfWork) Rollback(_ context.Context) error       { return nil }
func (u *fakeUnitOfWork) OrderRepository() ports.OrderRepository { return u.store }
func (u *fakeUnitOfWork) UserRepository() ports.UserRepository   { return nil }

type fakeUnitOfWorkFactory struct {
	store *memoryOrderStore
}

func (f *fakeUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

// recordingDispatcher collects dispatched order ids.
type recordingDispatcher struct {
	mu  sync.Mutex
	ids []int64
}

func (d *recordingDispatcher) Dispatch(orderID int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ids = append(d.ids, orderID)
	return nil
}

func (d *recordingDispatcher) dispatched() []int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]int64(nil), d.ids...)
}

func TestStuckOrderSweepJob_RedispatchesUnfinishedOrders(t *testing.T) {
	store := newMemoryOrderStore()

	stuckPending, err := order.RestoreOrder(1, 1, "stuck pending", 1, order.Pending)
	require.NoError(t, err)
	store.put(stuckPending)

	stuckProcessing, err := order.RestoreOrder(2, 1, "stuck processing", 1, order.Processing)
	require.NoError(t, err)
	store.put(stuckProcessing)

	finished, err := order.RestoreOrder(3, 1, "finished", 1, order.Completed)
	require.NoError(t, err)
	store.put(finished)

	dispatcher := &recordingDispatcher{}
	sweep := jobs.NewStuckOrderSweepJob(
		&fakeUnitOfWorkFactory{store: store},
		dispatcher,
		"* * * * * *",
		0, // no grace period so the seeded orders qualify immediately
		testLogger(),
	)

	require.NoError(t, sweep.Start())
	defer sweep.Stop()

	assert.Eventually(t, func() bool {
		seen := map[int64]bool{}
		for _, id := range dispatcher.dispatched() {
			seen[id] = true
		}
		return seen[1] && seen[2] && !seen[3]
	}, 5*time.Second, 50*time.Millisecond)
}

func TestStuckOrderSweepJob_NothingToSweep(t *testing.T) {
	store := newMemoryOrderStore()

	finished, err := order.RestoreOrder(1, 1, "finished", 1, order.Completed)
	require.NoError(t, err)
	store.put(finished)

	dispatcher := &recordingDispatcher{}
	sweep := jobs.NewStuckOrderSweepJob(
		&fakeUnitOfWorkFactory{store: store},
		dispatcher,
		"* * * * * *",
		0,
		testLogger(),
	)

	require.NoError(t, sweep.Start())
	defer sweep.Stop()

	time.Sleep(1500 * time.Millisecond)
	assert.Empty(t, dispatcher.dispatched())
}

func TestStuckOrderSweepJob_InvalidSchedule_FailsToStart(t *testing.T) {
	store := newMemoryOrderStore()
	sweep := jobs.NewStuckOrderSweepJob(
		&fakeUnitOfWorkFactory{store: store},
		&recordingDispatcher{},
		"not a cron expression",
		time.Minute,
		testLogger(),
	)

	require.Error(t, sweep.Start())
}
