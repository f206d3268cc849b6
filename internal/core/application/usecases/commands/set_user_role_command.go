package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrSetUserRoleCommandIsNotConstructed = errors.New(
		"SetUserRoleCommand must be created via NewSetUserRoleCommand constructor",
	)
)

// RoleFlag names one of the four privilege flags a super-admin can toggle.
type RoleFlag string

const (
	FlagAdmin      RoleFlag = "admin"
	FlagSuperAdmin RoleFlag = "super_admin"
	FlagLivreur    RoleFlag = "livreur"
	FlagActive     RoleFlag = "active"
)

// SetUserRoleCommand represents a super-admin toggling one privilege flag on
// an account. The actor id is carried so the aggregate can enforce the
// self-lock rules on the super-admin and active flags.
type SetUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID  int64
	actorID int64
	flag    RoleFlag
	value   bool

	guard guard.ConstructorGuard
}

// NewSetUserRoleCommand creates a command to toggle a privilege flag.
func NewSetUserRoleCommand(userID, actorID int64, flag RoleFlag, value bool) (SetUserRoleCommand, error) {
	if userID <= 0 {
		return SetUserRoleCommand{}, errs.NewValueIsInvalidError("userId")
	}
	if actorID <= 0 {
		return SetUserRoleCommand{}, errs.NewValueIsInvalidError("actorId")
	}
	switch flag {
	case FlagAdmin, FlagSuperAdmin, FlagLivreur, FlagActive:
	default:
		return SetUserRoleCommand{}, errs.NewValueIsInvalidError("flag")
	}

	return SetUserRoleCommand{
		userID:  userID,
		actorID: actorID,
		flag:    flag,
		value:   value,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrSetUserRoleCommandIsNotConstructed)
}

// UserID returns the account being changed.
func (c SetUserRoleCommand) UserID() int64 {
	return c.userID
}

// ActorID returns the super-admin performing the change.
func (c SetUserRoleCommand) ActorID() int64 {
	return c.actorID
}

// Flag returns which privilege flag to toggle.
func (c SetUserRoleCommand) Flag() RoleFlag {
	return c.flag
}

// Value returns the new value of the flag.
func (c SetUserRoleCommand) Value() bool {
	return c.value
}
