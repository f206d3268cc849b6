package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	ErrCreateMenuCommandIsNotConstructed = errors.New(
		"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
	)
)

// CreateMenuCommand represents an admin adding an item to the catalog.
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	imageURL    string
	price       kernel.Money
	categoryID  int64

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand creates a command to add a catalog item.
func NewCreateMenuCommand(name, description, imageURL string, price kernel.Money, categoryID int64) (CreateMenuCommand, error) {
	if name == "" {
		return CreateMenuCommand{}, errs.NewValueIsRequiredError("name")
	}
	if price.IsNegative() {
		return CreateMenuCommand{}, errs.NewValueIsInvalidError("price")
	}
	if categoryID <= 0 {
		return CreateMenuCommand{}, errs.NewValueIsInvalidError("categoryId")
	}

	return CreateMenuCommand{
		name:        name,
		description: description,
		imageURL:    imageURL,
		price:       price,
		categoryID:  categoryID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) Name() string {
	return c.name
}

func (c CreateMenuCommand) Description() string {
	return c.description
}

func (c CreateMenuCommand) ImageURL() string {
	return c.imageURL
}

func (c CreateMenuCommand) Price() kernel.Money {
	return c.price
}

func (c CreateMenuCommand) CategoryID() int64 {
	return c.categoryID
}
