package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrAuthenticateUserCommandIsNotConstructed = errors.New(
		"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
	)
)

// AuthenticateUserCommand represents a login attempt.
type AuthenticateUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserCommand creates a command for a login attempt.
func NewAuthenticateUserCommand(email, password string) (AuthenticateUserCommand, error) {
	if email == "" {
		return AuthenticateUserCommand{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return AuthenticateUserCommand{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateUserCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

// Email returns the login email.
func (c AuthenticateUserCommand) Email() string {
	return c.email
}

// Password returns the presented password.
func (c AuthenticateUserCommand) Password() string {
	return c.password
}
