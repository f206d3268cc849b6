package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrDeleteMenuCommandIsNotConstructed = errors.New(
		"DeleteMenuCommand must be created via NewDeleteMenuCommand constructor",
	)
)

// DeleteMenuCommand represents an admin removing a catalog item.
type DeleteMenuCommand struct { //nolint:recvcheck //using for validation
	menuID int64

	guard guard.ConstructorGuard
}

// NewDeleteMenuCommand creates a command to remove a catalog item.
func NewDeleteMenuCommand(menuID int64) (DeleteMenuCommand, error) {
	if menuID <= 0 {
		return DeleteMenuCommand{}, errs.NewValueIsInvalidError("menuId")
	}

	return DeleteMenuCommand{
		menuID: menuID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuCommandIsNotConstructed)
}

func (c DeleteMenuCommand) MenuID() int64 {
	return c.menuID
}
