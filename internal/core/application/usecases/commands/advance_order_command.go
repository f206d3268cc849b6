package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand represents a request to move an order one step forward
// along the linear workflow.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order.
func NewAdvanceOrderCommand(orderID int64) (AdvanceOrderCommand, error) {
	if orderID <= 0 {
		return AdvanceOrderCommand{}, errs.NewValueIsInvalidError("orderId")
	}

	return AdvanceOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AdvanceOrderCommand) OrderID() int64 {
	return c.orderID
}
