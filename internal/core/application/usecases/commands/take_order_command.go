package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrTakeOrderCommandIsNotConstructed = errors.New(
		"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
	)
)

// TakeOrderCommand represents a livreur taking charge of a ready order.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	livreurID    int64
	livreurEmail string

	guard guard.ConstructorGuard
}

// NewTakeOrderCommand creates a command for a livreur pickup.
func NewTakeOrderCommand(orderID, livreurID int64, livreurEmail string) (TakeOrderCommand, error) {
	if orderID <= 0 {
		return TakeOrderCommand{}, errs.NewValueIsInvalidError("orderId")
	}
	if livreurID <= 0 {
		return TakeOrderCommand{}, errs.NewValueIsInvalidError("livreurId")
	}
	if livreurEmail == "" {
		return TakeOrderCommand{}, errs.NewValueIsRequiredError("livreurEmail")
	}

	return TakeOrderCommand{
		orderID:      orderID,
		livreurID:    livreurID,
		livreurEmail: livreurEmail,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c TakeOrderCommand) OrderID() int64 {
	return c.orderID
}

// LivreurID returns the id of the livreur taking the order.
func (c TakeOrderCommand) LivreurID() int64 {
	return c.livreurID
}

// LivreurEmail returns the livreur's email for the audit trail.
func (c TakeOrderCommand) LivreurEmail() string {
	return c.livreurEmail
}
