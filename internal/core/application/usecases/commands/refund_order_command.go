package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrRefundOrderCommandIsNotConstructed = errors.New(
		"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
	)
)

// RefundOrderCommand represents an administrator refunding a paid order.
type RefundOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	actorEmail string

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a command to refund an order.
func NewRefundOrderCommand(orderID int64, actorEmail string) (RefundOrderCommand, error) {
	if orderID <= 0 {
		return RefundOrderCommand{}, errs.NewValueIsInvalidError("orderId")
	}
	if actorEmail == "" {
		return RefundOrderCommand{}, errs.NewValueIsRequiredError("actorEmail")
	}

	return RefundOrderCommand{
		orderID:    orderID,
		actorEmail: actorEmail,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RefundOrderCommand) OrderID() int64 {
	return c.orderID
}

// ActorEmail returns the administrator's email for the audit trail.
func (c RefundOrderCommand) ActorEmail() string {
	return c.actorEmail
}
