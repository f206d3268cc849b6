package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrResetPasswordCommandIsNotConstructed = errors.New(
		"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
	)
)

// ResetPasswordCommand represents redeeming a reset code for a new password.
type ResetPasswordCommand struct { //nolint:recvcheck //using for validation
	email       string
	code        string
	newPassword string

	guard guard.ConstructorGuard
}

// NewResetPasswordCommand creates a command to redeem a reset code.
func NewResetPasswordCommand(email, code, newPassword string) (ResetPasswordCommand, error) {
	if email == "" {
		return ResetPasswordCommand{}, errs.NewValueIsRequiredError("email")
	}
	if code == "" {
		return ResetPasswordCommand{}, errs.NewValueIsRequiredError("code")
	}
	if len(newPassword) < minPasswordLength {
		return ResetPasswordCommand{}, errs.NewValueIsInvalidError("newPassword")
	}

	return ResetPasswordCommand{
		email:       email,
		code:        code,
		newPassword: newPassword,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}

// Email returns the account email.
func (c ResetPasswordCommand) Email() string {
	return c.email
}

// Code returns the presented reset code.
func (c ResetPasswordCommand) Code() string {
	return c.code
}

// NewPassword returns the replacement password.
func (c ResetPasswordCommand) NewPassword() string {
	return c.newPassword
}
