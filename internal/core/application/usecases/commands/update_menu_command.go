package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/menu"
	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrUpdateMenuCommandIsNotConstructed = errors.New(
		"UpdateMenuCommand must be created via NewUpdateMenuCommand constructor",
	)
)

// UpdateMenuCommand represents an admin editing a catalog item.
type UpdateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID int64
	patch  menu.Patch

	guard guard.ConstructorGuard
}

// NewUpdateMenuCommand creates a command to patch a catalog item.
func NewUpdateMenuCommand(menuID int64, patch menu.Patch) (UpdateMenuCommand, error) {
	if menuID <= 0 {
		return UpdateMenuCommand{}, errs.NewValueIsInvalidError("menuId")
	}

	return UpdateMenuCommand{
		menuID: menuID,
		patch:  patch,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuCommandIsNotConstructed)
}

func (c UpdateMenuCommand) MenuID() int64 {
	return c.menuID
}

func (c UpdateMenuCommand) Patch() menu.Patch {
	return c.patch
}
