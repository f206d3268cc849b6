package commands

import (
	"context"

	"lytefood/internal/core/domain/model/menu"
)

// CreateCategoryCommandHandler handles category creation. Duplicate names
// surface as a state conflict from the unique constraint.
type CreateCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory MenuUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the category and returns its new id.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	category, err := menu.NewCategory(cmd.Name())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().AddCategory(ctx, category); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return category.ID(), nil
}
