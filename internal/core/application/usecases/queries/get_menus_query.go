package queries

import (
	"errors"

	"lytefood/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetMenusQueryIsNotConstructed = errors.New(
		"GetMenusQuery must be created via NewGetMenusQuery constructor",
	)
)

// GetMenusQuery retrieves the catalog, optionally filtered by category.
type GetMenusQuery struct {
	categoryID int64

	guard guard.ConstructorGuard
}

// NewGetMenusQuery creates a catalog query. A zero categoryID means no filter.
func NewGetMenusQuery(categoryID int64) GetMenusQuery {
	return GetMenusQuery{
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetMenusQueryIsNotConstructed)
}

// CategoryID returns the category filter, zero when unset.
func (q GetMenusQuery) CategoryID() int64 {
	return q.categoryID
}

// MenuResponse is one catalog entry with its category name denormalized.
type MenuResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"image_url"`
	Price        decimal.Decimal `json:"price"`
	IsFavorite   bool            `json:"is_favorite"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
}

// CategoryResponse is one category entry.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
