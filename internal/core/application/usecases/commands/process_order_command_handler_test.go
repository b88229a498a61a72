package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreOrderInStatus(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	restored, err := order.RestoreOrder(id, 1, "test item", 3, status)
	require.NoError(t, err)
	return restored
}

func TestProcessOrderCommandHandler_Handle_PendingOrder_FullCycle(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewProcessOrderCommand(5)

	// Phase one: Pending -> Processing
	repo1 := new(MockOrderRepository)
	uow1 := new(MockOrderUoW)
	mock.InOrder(
		uow1.On("Begin", ctx).Return(nil).Once(),
		uow1.On("OrderRepository").Return(repo1).Once(),
		repo1.On("Get", mock.Anything, int64(5)).
			Return(restoreOrderInStatus(t, 5, order.Pending), nil).Once(),
		repo1.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Processing
		})).Return(nil).Once(),
		uow1.On("Commit", ctx).Return(nil).Once(),
		uow1.On("Rollback", ctx).Return(nil).Once(),
	)

	// Phase two: Processing -> Completed
	repo2 := new(MockOrderRepository)
	uow2 := new(MockOrderUoW)
	mock.InOrder(
		uow2.On("Begin", ctx).Return(nil).Once(),
		uow2.On("OrderRepository").Return(repo2).Once(),
		repo2.On("Get", mock.Anything, int64(5)).
			Return(restoreOrderInStatus(t, 5, order.Processing), nil).Once(),
		repo2.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Completed
		})).Return(nil).Once(),
		uow2.On("Commit", ctx).Return(nil).Once(),
		uow2.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow1).Once()
	factory.On("Create").Return(uow2).Once()

	h := commands.NewProcessOrderCommandHandler(factory, time.Millisecond)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	repo1.AssertExpectations(t)
	repo2.AssertExpectations(t)
	uow1.AssertExpectations(t)
	uow2.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessOrderCommandHandler_Handle_AbsentOrder_SilentNoOp(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewProcessOrderCommand(404)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(404)).
			Return(nil, errs.NewObjectNotFoundError("order", int64(404))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessOrderCommandHandler(factory, time.Millisecond)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessOrderCommandHandler_Handle_CompletedOrder_LeftUntouched(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewProcessOrderCommand(5)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(5)).
			Return(restoreOrderInStatus(t, 5, order.Completed), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessOrderCommandHandler(factory, time.Millisecond)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// Never reaches the completion phase
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
}

func TestProcessOrderCommandHandler_Handle_ProcessingOrder_SkipsFirstTransition(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewProcessOrderCommand(5)

	// A previous task died mid-delay; this re-dispatch resumes at completion
	repo1 := new(MockOrderRepository)
	uow1 := new(MockOrderUoW)
	mock.InOrder(
		uow1.On("Begin", ctx).Return(nil).Once(),
		uow1.On("OrderRepository").Return(repo1).Once(),
		repo1.On("Get", mock.Anything, int64(5)).
			Return(restoreOrderInStatus(t, 5, order.Processing), nil).Once(),
		uow1.On("Rollback", ctx).Return(nil).Once(),
	)

	repo2 := new(MockOrderRepository)
	uow2 := new(MockOrderUoW)
	mock.InOrder(
		uow2.On("Begin", ctx).Return(nil).Once(),
		uow2.On("OrderRepository").Return(repo2).Once(),
		repo2.On("Get", mock.Anything, int64(5)).
			Return(restoreOrderInStatus(t, 5, order.Processing), nil).Once(),
		repo2.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Completed
		})).Return(nil).Once(),
		uow2.On("Commit", ctx).Return(nil).Once(),
		uow2.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow1).Once()
	factory.On("Create").Return(uow2).Once()

	h := commands.NewProcessOrderCommandHandler(factory, time.Millisecond)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	repo1.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	repo2.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ProcessOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewProcessOrderCommandHandler(factory, time.Millisecond)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestProcessOrderCommandHandler_Handle_CanceledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cmd, _ := commands.NewProcessOrderCommand(5)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(5)).
			Return(restoreOrderInStatus(t, 5, order.Pending), nil).Once(),
		repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	// Cancel while the handler sits in the processing delay
	h := commands.NewProcessOrderCommandHandler(factory, time.Minute)
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, context.Canceled)

	// The order stays Processing; the recovery sweep finishes it later
	factory.AssertExpectations(t)
}

func TestProcessOrderCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewProcessOrderCommand(5)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(5)).
			Return(nil, errors.New("connection refused")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessOrderCommandHandler(factory, time.Millisecond)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)

	factory.AssertExpectations(t)
}
