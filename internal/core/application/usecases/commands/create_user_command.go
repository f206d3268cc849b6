package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/user"
	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
)

// CreateUserCommand represents a super-admin creating an account with
// explicit role flags, unlike self-service registration.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	profile  user.Profile
	roles    user.Roles

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command for administrative account creation.
func NewCreateUserCommand(email, password string, profile user.Profile, roles user.Roles) (CreateUserCommand, error) {
	if email == "" {
		return CreateUserCommand{}, errs.NewValueIsRequiredError("email")
	}
	if len(password) < minPasswordLength {
		return CreateUserCommand{}, errs.NewValueIsInvalidError("password")
	}

	return CreateUserCommand{
		email:    email,
		password: password,
		profile:  profile,
		roles:    roles,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Email returns the new account's email.
func (c CreateUserCommand) Email() string {
	return c.email
}

// Password returns the raw password, hashed before it reaches the domain.
func (c CreateUserCommand) Password() string {
	return c.password
}

// Profile returns the profile fields of the new account.
func (c CreateUserCommand) Profile() user.Profile {
	return c.profile
}

// Roles returns the privilege flags of the new account.
func (c CreateUserCommand) Roles() user.Roles {
	return c.roles
}
