package ports

import (
	"context"

	"lytefood/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for the catalog.
type MenuRepository interface {
	// Add persists a new catalog item, binding the generated id.
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Update persists changes to an existing catalog item.
	Update(ctx context.Context, aggregate *menu.Menu) error

	// Delete removes a catalog item.
	Delete(ctx context.Context, id int64) error

	// Get retrieves a catalog item by identifier.
	Get(ctx context.Context, id int64) (*menu.Menu, error)

	// GetMany retrieves the catalog items with the given identifiers.
	// Missing ids surface as errs.ErrObjectNotFound.
	GetMany(ctx context.Context, ids []int64) ([]*menu.Menu, error)

	// AddCategory persists a new category, binding the generated id.
	// A duplicate name surfaces as errs.ErrStateConflict.
	AddCategory(ctx context.Context, category *menu.Category) error

	// UpdateCategory persists changes to an existing category.
	UpdateCategory(ctx context.Context, category *menu.Category) error

	// DeleteCategory removes a category and its items.
	DeleteCategory(ctx context.Context, id int64) error

	// GetCategory retrieves a category by identifier.
	GetCategory(ctx context.Context, id int64) (*menu.Category, error)
}
