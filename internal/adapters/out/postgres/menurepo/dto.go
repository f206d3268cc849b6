// Package menurepo provides data transfer objects and mapping functions for
// catalog persistence.
package menurepo

import (
	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// MenuDTO represents the database row for a catalog item.
type MenuDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Name        string
	Description string
	ImageURL    string          `gorm:"column:image_url"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsFavorite  bool
	CategoryID  int64 `gorm:"index"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

// CategoryDTO represents the database row for a menu category.
type CategoryDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"uniqueIndex"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

func fromDomain(aggregate *menu.Menu) MenuDTO {
	return MenuDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		ImageURL:    aggregate.ImageURL(),
		Price:       aggregate.Price().Decimal(),
		IsFavorite:  aggregate.IsFavorite(),
		CategoryID:  aggregate.CategoryID(),
	}
}

func toDomain(dto MenuDTO) (*menu.Menu, error) {
	return menu.RestoreMenu(menu.RestoreMenuParams{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
		Price:       kernel.NewMoneyFromDecimal(dto.Price),
		IsFavorite:  dto.IsFavorite,
		CategoryID:  dto.CategoryID,
	})
}
