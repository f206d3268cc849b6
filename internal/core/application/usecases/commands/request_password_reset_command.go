package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrRequestPasswordResetCommandIsNotConstructed = errors.New(
		"RequestPasswordResetCommand must be created via NewRequestPasswordResetCommand constructor",
	)
)

// RequestPasswordResetCommand represents a forgot-password request.
type RequestPasswordResetCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewRequestPasswordResetCommand creates a command to request a reset code.
func NewRequestPasswordResetCommand(email string) (RequestPasswordResetCommand, error) {
	if email == "" {
		return RequestPasswordResetCommand{}, errs.NewValueIsRequiredError("email")
	}

	return RequestPasswordResetCommand{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPasswordResetCommand) Validate() error {
	return c.guard.Validate(ErrRequestPasswordResetCommandIsNotConstructed)
}

// Email returns the account email the reset was requested for.
func (c RequestPasswordResetCommand) Email() string {
	return c.email
}
