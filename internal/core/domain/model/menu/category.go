package menu

import "lytefood/internal/pkg/errs"

// Category groups catalog items. Names are unique; the database constraint
// is the final arbiter, surfaced by the repository as a conflict.
type Category struct {
	id   int64
	name string
}

// NewCategory creates a named category.
func NewCategory(name string) (*Category, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return &Category{name: name}, nil
}

// RestoreCategory rebuilds a category from persistence.
func RestoreCategory(id int64, name string) (*Category, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}
	return &Category{id: id, name: name}, nil
}

// AttachID binds the database-generated identifier after the insert.
func (c *Category) AttachID(id int64) error {
	if id <= 0 || c.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	c.id = id
	return nil
}

func (c *Category) ID() int64 {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

// Rename changes the category name.
func (c *Category) Rename(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
