package menurepo

import (
	"context"
	"errors"

	"lytefood/internal/core/domain/model/menu"
	"lytefood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM catalog repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Add inserts the catalog item and binds the generated id.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AttachID(dto.ID)
}

// Update overwrites the catalog item row.
func (r *GormMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MenuDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuId", dto.ID)
	}

	return nil
}

// Delete removes a catalog item.
func (r *GormMenuRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&MenuDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuId", id)
	}

	return nil
}

// Get retrieves a catalog item by id.
func (r *GormMenuRepository) Get(ctx context.Context, id int64) (*menu.Menu, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("menuId")
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves the catalog items with the given ids. A missing id
// surfaces as not found so order pricing never silently drops a line.
func (r *GormMenuRepository) GetMany(ctx context.Context, ids []int64) ([]*menu.Menu, error) {
	var dtos []MenuDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]MenuDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	menus := make([]*menu.Menu, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menuId", id)
		}
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		menus = append(menus, aggregate)
	}

	return menus, nil
}

// AddCategory inserts the category and binds the generated id. A duplicate
// name surfaces as a state conflict.
func (r *GormMenuRepository) AddCategory(ctx context.Context, category *menu.Category) error {
	dto := CategoryDTO{Name: category.Name()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause(
				"category name already taken", "a free name", err)
		}
		return err
	}

	return category.AttachID(dto.ID)
}

// UpdateCategory overwrites the category row.
func (r *GormMenuRepository) UpdateCategory(ctx context.Context, category *menu.Category) error {
	result := r.db.WithContext(ctx).Model(&CategoryDTO{}).
		Where("id = ?", category.ID()).
		Update("name", category.Name())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("categoryId", category.ID())
	}

	return nil
}

// DeleteCategory removes a category together with its items.
func (r *GormMenuRepository) DeleteCategory(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Delete(&MenuDTO{}, "category_id = ?", id).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CategoryDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("categoryId", id)
	}

	return nil
}

// GetCategory retrieves a category by id.
func (r *GormMenuRepository) GetCategory(ctx context.Context, id int64) (*menu.Category, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("categoryId")
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("categoryId", id)
		}
		return nil, err
	}

	return menu.RestoreCategory(dto.ID, dto.Name)
}
