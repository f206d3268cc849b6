package commands_test

import (
	"testing"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_CustomerCancelsOwnOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(41, 7, "alice@example.com", false)
	require.NoError(t, err)

	aggregate := orderInStatus(t, 41, order.EnAttente)

	orderRepo := new(MockTakeOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(41)).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Annulee, aggregate.Status())

	history := aggregate.PendingHistory()
	require.Len(t, history, 1)
	assert.Equal(t, "alice@example.com", history[0].Actor())
	assert.Equal(t, order.RoleClient, history[0].Role())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(41, 8, "eve@example.com", false)
	require.NoError(t, err)

	aggregate := orderInStatus(t, 41, order.EnAttente)

	orderRepo := new(MockTakeOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(41)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, order.EnAttente, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCancelOrderCommandHandler_Handle_PreparationStarted(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(41, 7, "alice@example.com", false)
	require.NoError(t, err)

	aggregate := orderInStatus(t, 41, order.EnPreparation)

	orderRepo := new(MockTakeOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(41)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}
