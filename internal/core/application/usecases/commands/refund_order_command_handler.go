package commands

import (
	"context"

	"lytefood/internal/core/domain/model/payment"
	"lytefood/internal/core/ports"
)

// RefundOrderCommandHandler handles administrative refunds. The gateway is
// asked to return the money first; only an accepted refund moves the order
// to remboursée and writes the refund ledger record.
type RefundOrderCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	gateway    ports.PaymentGateway
}

// NewRefundOrderCommandHandler creates a handler for refunds.
func NewRefundOrderCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	gateway ports.PaymentGateway,
) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle refunds the order's approved payment through the gateway and
// persists the state change with the refund record.
func (h *RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	paymentRepo := uow.PaymentRepository()
	paid, err := paymentRepo.GetApprovedPayment(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// The state check runs before the gateway call so an unrefundable order
	// never triggers an outbound refund.
	if err = aggregate.MarkRefunded(cmd.ActorEmail()); err != nil {
		return err
	}

	refund, err := h.gateway.Refund(ctx, paid.GatewayRef(), aggregate.Total())
	if err != nil {
		return err
	}

	record, err := payment.NewPayment(
		cmd.OrderID(), refund.Status, refund.Reference,
		payment.KindRefund, refund.Amount,
	)
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, record); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
