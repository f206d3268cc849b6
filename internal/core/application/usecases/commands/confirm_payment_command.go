package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
)

// ConfirmPaymentCommand carries a payment gateway callback: the gateway's
// transaction id, the order it claims to pay, and the claimed outcome.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	transactionID string
	orderID       int64
	claimedStatus string
	amount        kernel.Money

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command from a callback payload.
func NewConfirmPaymentCommand(
	transactionID string,
	orderID int64,
	claimedStatus string,
	amount kernel.Money,
) (ConfirmPaymentCommand, error) {
	if transactionID == "" {
		return ConfirmPaymentCommand{}, errs.NewValueIsRequiredError("transactionId")
	}
	if orderID <= 0 {
		return ConfirmPaymentCommand{}, errs.NewValueIsInvalidError("orderId")
	}

	return ConfirmPaymentCommand{
		transactionID: transactionID,
		orderID:       orderID,
		claimedStatus: claimedStatus,
		amount:        amount,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// TransactionID returns the gateway's transaction identifier.
func (c ConfirmPaymentCommand) TransactionID() string {
	return c.transactionID
}

// OrderID returns the order the callback claims to pay.
func (c ConfirmPaymentCommand) OrderID() int64 {
	return c.orderID
}

// ClaimedStatus returns the outcome claimed by the callback payload.
func (c ConfirmPaymentCommand) ClaimedStatus() string {
	return c.claimedStatus
}

// Amount returns the paid amount reported by the callback.
func (c ConfirmPaymentCommand) Amount() kernel.Money {
	return c.amount
}
