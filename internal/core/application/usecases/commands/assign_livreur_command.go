package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrAssignLivreurCommandIsNotConstructed = errors.New(
		"AssignLivreurCommand must be created via NewAssignLivreurCommand constructor",
	)
)

// AssignLivreurCommand represents an administrator binding a livreur to an
// order.
type AssignLivreurCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	livreurID int64

	guard guard.ConstructorGuard
}

// NewAssignLivreurCommand creates a command to assign a livreur.
func NewAssignLivreurCommand(orderID, livreurID int64) (AssignLivreurCommand, error) {
	if orderID <= 0 {
		return AssignLivreurCommand{}, errs.NewValueIsInvalidError("orderId")
	}
	if livreurID <= 0 {
		return AssignLivreurCommand{}, errs.NewValueIsInvalidError("livreurId")
	}

	return AssignLivreurCommand{
		orderID:   orderID,
		livreurID: livreurID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignLivreurCommand) Validate() error {
	return c.guard.Validate(ErrAssignLivreurCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AssignLivreurCommand) OrderID() int64 {
	return c.orderID
}

// LivreurID returns the user id of the livreur being assigned.
func (c AssignLivreurCommand) LivreurID() int64 {
	return c.livreurID
}
