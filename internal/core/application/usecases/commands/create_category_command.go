package commands

import (
	"errors"

	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrCreateCategoryCommandIsNotConstructed = errors.New(
		"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
	)
)

// CreateCategoryCommand represents an admin adding a catalog category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a category.
func NewCreateCategoryCommand(name string) (CreateCategoryCommand, error) {
	if name == "" {
		return CreateCategoryCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateCategoryCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Name() string {
	return c.name
}
