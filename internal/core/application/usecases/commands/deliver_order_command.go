package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrDeliverOrderCommandIsNotConstructed = errors.New(
		"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
	)
)

// DeliverOrderCommand represents the assigned livreur confirming delivery.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	livreurID    int64
	livreurEmail string

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to confirm a delivery.
func NewDeliverOrderCommand(orderID, livreurID int64, livreurEmail string) (DeliverOrderCommand, error) {
	if orderID <= 0 {
		return DeliverOrderCommand{}, errs.NewValueIsInvalidError("orderId")
	}
	if livreurID <= 0 {
		return DeliverOrderCommand{}, errs.NewValueIsInvalidError("livreurId")
	}
	if livreurEmail == "" {
		return DeliverOrderCommand{}, errs.NewValueIsRequiredError("livreurEmail")
	}

	return DeliverOrderCommand{
		orderID:      orderID,
		livreurID:    livreurID,
		livreurEmail: livreurEmail,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c DeliverOrderCommand) OrderID() int64 {
	return c.orderID
}

// LivreurID returns the id of the delivering livreur.
func (c DeliverOrderCommand) LivreurID() int64 {
	return c.livreurID
}

// LivreurEmail returns the livreur's email for the audit trail.
func (c DeliverOrderCommand) LivreurEmail() string {
	return c.livreurEmail
}
