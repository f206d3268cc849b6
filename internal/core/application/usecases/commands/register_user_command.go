package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/user"
	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
)

// Raw passwords must be at least this long. Hashes are exempt.
const minPasswordLength = 8

// RegisterUserCommand represents a self-service account registration.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	profile  user.Profile

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a customer account.
func NewRegisterUserCommand(email, password string, profile user.Profile) (RegisterUserCommand, error) {
	if email == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("email")
	}
	if len(password) < minPasswordLength {
		return RegisterUserCommand{}, errs.NewValueIsInvalidError("password")
	}

	return RegisterUserCommand{
		email:    email,
		password: password,
		profile:  profile,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the registration email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the raw password, hashed before it reaches the domain.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Profile returns the optional profile fields supplied at registration.
func (c RegisterUserCommand) Profile() user.Profile {
	return c.profile
}
