package ports

import (
	"context"

	"lytefood/internal/core/domain/model/kernel"
)

// GatewayTransaction is the gateway's view of a transaction, fetched
// server-to-server. Callback payloads are never trusted without it.
type GatewayTransaction struct {
	Reference string
	Status    string
	Amount    kernel.Money
}

// GatewayRefund is the gateway's acknowledgement of a refund request.
type GatewayRefund struct {
	Reference string
	Status    string
	Amount    kernel.Money
}

// PaymentGateway defines the contract with the external payment provider.
type PaymentGateway interface {
	// VerifyTransaction fetches the transaction from the gateway by its id.
	// An unreachable gateway or a non-OK answer surfaces as
	// errs.ErrVerificationFailed.
	VerifyTransaction(ctx context.Context, transactionID string) (GatewayTransaction, error)

	// Refund asks the gateway to return the amount of a past transaction.
	Refund(ctx context.Context, transactionRef string, amount kernel.Money) (GatewayRefund, error)
}
