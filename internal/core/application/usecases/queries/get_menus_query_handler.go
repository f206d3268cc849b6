package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMenusQueryHandler retrieves the catalog.
type GetMenusQueryHandler struct {
	db *gorm.DB
}

// NewGetMenusQueryHandler creates a handler for catalog reads.
func NewGetMenusQueryHandler(db *gorm.DB) GetMenusQueryHandler {
	return GetMenusQueryHandler{db: db}
}

// Handle returns the menus with their category names, optionally restricted
// to a single category.
func (h GetMenusQueryHandler) Handle(ctx context.Context, query GetMenusQuery) ([]MenuResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT m.id, m.name, m.description, m.image_url, m.price,
		       m.is_favorite, m.category_id, c.name AS category_name
		FROM menus m
		JOIN categories c ON c.id = m.category_id
	`
	var args []any
	if query.CategoryID() > 0 {
		sql += " WHERE m.category_id = ?"
		args = append(args, query.CategoryID())
	}
	sql += " ORDER BY m.id"

	var menus []MenuResponse
	err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&menus).Error
	if err != nil {
		return nil, err
	}

	return menus, nil
}

// GetCategoriesQueryHandler retrieves all menu categories.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoriesQueryHandler creates a handler for category reads.
func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

// Handle returns every category.
func (h GetCategoriesQueryHandler) Handle(ctx context.Context) ([]CategoryResponse, error) {
	var categories []CategoryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name FROM categories ORDER BY id
	`).Scan(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
