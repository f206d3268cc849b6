package ports

import (
	"context"

	"lytefood/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for the payment ledger.
type PaymentRepository interface {
	// Add persists a new payment record, binding the generated id.
	Add(ctx context.Context, record *payment.Payment) error

	// GetByOrder retrieves all payment records of an order, oldest first.
	GetByOrder(ctx context.Context, orderID int64) ([]*payment.Payment, error)

	// GetApprovedPayment retrieves the confirmed incoming payment of an
	// order, used to locate the gateway reference for refunds.
	GetApprovedPayment(ctx context.Context, orderID int64) (*payment.Payment, error)
}
