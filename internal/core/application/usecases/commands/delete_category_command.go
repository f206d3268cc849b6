package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrDeleteCategoryCommandIsNotConstructed = errors.New(
		"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
	)
)

// DeleteCategoryCommand represents an admin removing a category and the
// catalog items under it.
type DeleteCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID int64

	guard guard.ConstructorGuard
}

// NewDeleteCategoryCommand creates a command to remove a category.
func NewDeleteCategoryCommand(categoryID int64) (DeleteCategoryCommand, error) {
	if categoryID <= 0 {
		return DeleteCategoryCommand{}, errs.NewValueIsInvalidError("categoryId")
	}

	return DeleteCategoryCommand{
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

func (c DeleteCategoryCommand) CategoryID() int64 {
	return c.categoryID
}
