package commands

import (
	"errors"
	"time"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
		"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
	)
)

// ExpireStaleOrdersCommand represents the periodic cleanup of orders that
// stayed en_attente past the payment window.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to expire pending orders
// older than maxAge.
func NewExpireStaleOrdersCommand(maxAge time.Duration) (ExpireStaleOrdersCommand, error) {
	if maxAge <= 0 {
		return ExpireStaleOrdersCommand{}, errs.NewValueIsInvalidError("maxAge")
	}

	return ExpireStaleOrdersCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long an order may stay en_attente before expiring.
func (c ExpireStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}
