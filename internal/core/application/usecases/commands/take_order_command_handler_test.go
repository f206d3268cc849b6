package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/ports"
	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTakeOrderRepository struct{ mock.Mock }

func (m *MockTakeOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTakeOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTakeOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockTakeOrderRepository) GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func orderInStatus(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	price, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)
	item, err := order.NewLineItem(1, 2, price)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:              id,
		CustomerID:      7,
		Status:          status,
		Items:           []order.LineItem{item},
		TVAAmount:       price.TVA(),
		Total:           price.WithTVA(),
		DeliveryAddress: "12 rue des Lilas, Cotonou",
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
		UpdatedBy:       "alice@example.com",
		Version:         1,
	})
	require.NoError(t, err)
	return aggregate
}

func TestTakeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTakeOrderCommand(41, 42, "marc@example.com")
	require.NoError(t, err)

	aggregate := orderInStatus(t, 41, order.Pret)

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

	handler := commands.NewTakeOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.EnChemin, aggregate.Status())
	require.NotNil(t, aggregate.LivreurID())
	assert.Equal(t, int64(42), *aggregate.LivreurID())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTakeOrderCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTakeOrderCommand(41, 42, "marc@example.com")
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

	handler := commands.NewTakeOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestTakeOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTakeOrderCommand(41, 42, "marc@example.com")
	require.NoError(t, err)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewTakeOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
