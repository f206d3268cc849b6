package commands

import (
	"context"
	"errors"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/domain/model/payment"
	"lytefood/internal/core/ports"
	"lytefood/internal/pkg/errs"
)

// ConfirmPaymentCommandHandler handles payment gateway callbacks. The
// callback payload is never trusted on its own: the transaction is fetched
// from the gateway server-to-server, the payment only counts when both the
// fetched status and the claimed status are approved, and the claimed amount
// must match the gateway's. The ledger records the gateway's amount.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	gateway    ports.PaymentGateway
}

// NewConfirmPaymentCommandHandler creates a handler for gateway callbacks.
func NewConfirmPaymentCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	gateway ports.PaymentGateway,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle verifies the transaction with the gateway and, when confirmed,
// marks the order paid and writes the ledger record in one transaction.
// It returns false without error when the payment is simply not approved.
//
// A callback may arrive after an admin assignment already forced the order
// to payé; the ledger record is still written so the money is accounted for.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	tx, err := h.gateway.VerifyTransaction(ctx, cmd.TransactionID())
	if err != nil {
		return false, err
	}

	if tx.Status != payment.StatusApproved || cmd.ClaimedStatus() != payment.StatusApproved {
		return false, nil
	}

	if !tx.Amount.IsEqual(cmd.Amount()) {
		return false, errs.NewVerificationFailedError(cmd.TransactionID())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if err = aggregate.MarkPaid(); err != nil {
		if !errors.Is(err, order.ErrStatusUnchanged) {
			return false, err
		}
	} else if err = orderRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	record, err := payment.NewPayment(
		cmd.OrderID(), payment.StatusApproved, cmd.TransactionID(),
		payment.KindPayment, tx.Amount,
	)
	if err != nil {
		return false, err
	}

	if err = uow.PaymentRepository().Add(ctx, record); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
