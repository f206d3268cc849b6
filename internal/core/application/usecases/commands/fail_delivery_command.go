package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrFailDeliveryCommandIsNotConstructed = errors.New(
		"FailDeliveryCommand must be created via NewFailDeliveryCommand constructor",
	)
)

// FailDeliveryCommand represents the assigned livreur reporting that the
// delivery could not be completed.
type FailDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	livreurID    int64
	livreurEmail string

	guard guard.ConstructorGuard
}

// NewFailDeliveryCommand creates a command to report a failed delivery.
func NewFailDeliveryCommand(orderID, livreurID int64, livreurEmail string) (FailDeliveryCommand, error) {
	if orderID <= 0 {
		return FailDeliveryCommand{}, errs.NewValueIsInvalidError("orderId")
	}
	if livreurID <= 0 {
		return FailDeliveryCommand{}, errs.NewValueIsInvalidError("livreurId")
	}
	if livreurEmail == "" {
		return FailDeliveryCommand{}, errs.NewValueIsRequiredError("livreurEmail")
	}

	return FailDeliveryCommand{
		orderID:      orderID,
		livreurID:    livreurID,
		livreurEmail: livreurEmail,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FailDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFailDeliveryCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c FailDeliveryCommand) OrderID() int64 {
	return c.orderID
}

// LivreurID returns the id of the reporting livreur.
func (c FailDeliveryCommand) LivreurID() int64 {
	return c.livreurID
}

// LivreurEmail returns the livreur's email for the audit trail.
func (c FailDeliveryCommand) LivreurEmail() string {
	return c.livreurEmail
}
