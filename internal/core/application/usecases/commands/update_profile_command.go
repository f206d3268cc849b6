package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/user"
	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrUpdateProfileCommandIsNotConstructed = errors.New(
		"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
	)
)

// UpdateProfileCommand represents a user updating their own account: the
// whitelisted profile fields and optionally the password. Email and role
// flags are never touched here.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	userID   int64
	patch    user.ProfilePatch
	password *string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update a user's own profile.
func NewUpdateProfileCommand(userID int64, patch user.ProfilePatch, password *string) (UpdateProfileCommand, error) {
	if userID <= 0 {
		return UpdateProfileCommand{}, errs.NewValueIsInvalidError("userId")
	}
	if password != nil && len(*password) < minPasswordLength {
		return UpdateProfileCommand{}, errs.NewValueIsInvalidError("password")
	}

	return UpdateProfileCommand{
		userID:   userID,
		patch:    patch,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// UserID returns the account being updated.
func (c UpdateProfileCommand) UserID() int64 {
	return c.userID
}

// Patch returns the profile fields to change.
func (c UpdateProfileCommand) Patch() user.ProfilePatch {
	return c.patch
}

// Password returns the new raw password, or nil to keep the current one.
func (c UpdateProfileCommand) Password() *string {
	return c.password
}
