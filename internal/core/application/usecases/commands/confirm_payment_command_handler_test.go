package commands_test

import (
	"context"
	"testing"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/domain/model/payment"
	"lytefood/internal/core/ports"
	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) VerifyTransaction(ctx context.Context, transactionID string) (ports.GatewayTransaction, error) {
	args := m.Called(ctx, transactionID)
	return args.Get(0).(ports.GatewayTransaction), args.Error(1)
}

func (m *MockPaymentGateway) Refund(ctx context.Context, transactionRef string, amount kernel.Money) (ports.GatewayRefund, error) {
	args := m.Called(ctx, transactionRef, amount)
	return args.Get(0).(ports.GatewayRefund), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, record *payment.Payment) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByOrder(ctx context.Context, orderID int64) ([]*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetApprovedPayment(ctx context.Context, orderID int64) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockOrderPaymentUoW struct{ mock.Mock }

func (m *MockOrderPaymentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderPaymentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderPaymentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderPaymentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderPaymentUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockOrderPaymentUoWFactory struct{ mock.Mock }

func (m *MockOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderPaymentUoW)
}

func TestConfirmPaymentCommandHandler_Handle_Approved(t *testing.T) {
	ctx := t.Context()
	amount, err := kernel.NewMoneyFromString("23.60")
	require.NoError(t, err)
	cmd, err := commands.NewConfirmPaymentCommand("tx-123", 41, "approved", amount)
	require.NoError(t, err)

	aggregate := orderInStatus(t, 41, order.EnAttente)

	gateway := new(MockPaymentGateway)
	gateway.On("VerifyTransaction", ctx, "tx-123").
		Return(ports.GatewayTransaction{Reference: "tx-123", Status: "approved", Amount: amount}, nil).Once()

	orderRepo := new(MockTakeOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockOrderPaymentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(41)).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).
			Run(func(args mock.Arguments) {
				record := args.Get(1).(*payment.Payment)
				assert.Equal(t, payment.KindPayment, record.Kind())
				assert.Equal(t, "tx-123", record.GatewayRef())
				assert.True(t, record.Amount().IsEqual(amount))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmPaymentCommandHandler(factory, gateway)
	confirmed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, confirmed)
	assert.Equal(t, order.Paye, aggregate.Status())

	history := aggregate.PendingHistory()
	require.Len(t, history, 1)
	assert.Equal(t, order.ActorPaymentBridge, history[0].Actor())
	assert.Equal(t, order.RoleSystem, history[0].Role())
	gateway.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_GatewayDisagrees(t *testing.T) {
	ctx := t.Context()
	amount, err := kernel.NewMoneyFromString("23.60")
	require.NoError(t, err)
	cmd, err := commands.NewConfirmPaymentCommand("tx-123", 41, "approved", amount)
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	gateway.On("VerifyTransaction", ctx, "tx-123").
		Return(ports.GatewayTransaction{Reference: "tx-123", Status: "declined"}, nil).Once()

	factory := new(MockOrderPaymentUoWFactory)

	handler := commands.NewConfirmPaymentCommandHandler(factory, gateway)
	confirmed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, confirmed)
	factory.AssertNotCalled(t, "Create")
}

func TestConfirmPaymentCommandHandler_Handle_AmountMismatch(t *testing.T) {
	ctx := t.Context()
	claimed, err := kernel.NewMoneyFromString("23.60")
	require.NoError(t, err)
	verified, err := kernel.NewMoneyFromString("5.00")
	require.NoError(t, err)
	cmd, err := commands.NewConfirmPaymentCommand("tx-123", 41, "approved", claimed)
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	gateway.On("VerifyTransaction", ctx, "tx-123").
		Return(ports.GatewayTransaction{Reference: "tx-123", Status: "approved", Amount: verified}, nil).Once()

	factory := new(MockOrderPaymentUoWFactory)

	handler := commands.NewConfirmPaymentCommandHandler(factory, gateway)
	confirmed, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVerificationFailed)
	assert.False(t, confirmed)
	factory.AssertNotCalled(t, "Create")
}

func TestConfirmPaymentCommandHandler_Handle_VerificationUnavailable(t *testing.T) {
	ctx := t.Context()
	amount, err := kernel.NewMoneyFromString("23.60")
	require.NoError(t, err)
	cmd, err := commands.NewConfirmPaymentCommand("tx-123", 41, "approved", amount)
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	gateway.On("VerifyTransaction", ctx, "tx-123").
		Return(ports.GatewayTransaction{}, errs.NewVerificationFailedError("tx-123")).Once()

	factory := new(MockOrderPaymentUoWFactory)

	handler := commands.NewConfirmPaymentCommandHandler(factory, gateway)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVerificationFailed)
	factory.AssertNotCalled(t, "Create")
}
