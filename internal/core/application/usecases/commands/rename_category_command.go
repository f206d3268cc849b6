package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrRenameCategoryCommandIsNotConstructed = errors.New(
		"RenameCategoryCommand must be created via NewRenameCategoryCommand constructor",
	)
)

// RenameCategoryCommand represents an admin renaming a catalog category.
type RenameCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID int64
	name       string

	guard guard.ConstructorGuard
}

// NewRenameCategoryCommand creates a command to rename a category.
func NewRenameCategoryCommand(categoryID int64, name string) (RenameCategoryCommand, error) {
	if categoryID <= 0 {
		return RenameCategoryCommand{}, errs.NewValueIsInvalidError("categoryId")
	}
	if name == "" {
		return RenameCategoryCommand{}, errs.NewValueIsRequiredError("name")
	}

	return RenameCategoryCommand{
		categoryID: categoryID,
		name:       name,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameCategoryCommand) Validate() error {
	return c.guard.Validate(ErrRenameCategoryCommandIsNotConstructed)
}

func (c RenameCategoryCommand) CategoryID() int64 {
	return c.categoryID
}

func (c RenameCategoryCommand) Name() string {
	return c.name
}
