package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents an administrative request to set an
// order's status directly, outside the linear workflow.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	status     order.Status
	actorEmail string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to set an order's status.
func NewChangeOrderStatusCommand(orderID int64, status order.Status, actorEmail string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setActorEmail(actorEmail),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the requested status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// ActorEmail returns the administrator's email for the audit trail.
func (c ChangeOrderStatusCommand) ActorEmail() string {
	return c.actorEmail
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ChangeOrderStatusCommand) setActorEmail(actorEmail string) error {
	if actorEmail == "" {
		return errs.NewValueIsRequiredError("actorEmail")
	}
	c.actorEmail = actorEmail
	return nil
}
