package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to cancel an order, either by its
// customer or by an administrator.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	actorID    int64
	actorEmail string
	isAdmin    bool

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID, actorID int64, actorEmail string, isAdmin bool) (CancelOrderCommand, error) {
	if orderID <= 0 {
		return CancelOrderCommand{}, errs.NewValueIsInvalidError("orderId")
	}
	if actorID <= 0 {
		return CancelOrderCommand{}, errs.NewValueIsInvalidError("actorId")
	}
	if actorEmail == "" {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("actorEmail")
	}

	return CancelOrderCommand{
		orderID:    orderID,
		actorID:    actorID,
		actorEmail: actorEmail,
		isAdmin:    isAdmin,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}

// ActorID returns the id of the user requesting cancellation.
func (c CancelOrderCommand) ActorID() int64 {
	return c.actorID
}

// ActorEmail returns the requesting user's email for the audit trail.
func (c CancelOrderCommand) ActorEmail() string {
	return c.actorEmail
}

// IsAdmin reports whether the actor holds administrative privilege.
func (c CancelOrderCommand) IsAdmin() bool {
	return c.isAdmin
}
