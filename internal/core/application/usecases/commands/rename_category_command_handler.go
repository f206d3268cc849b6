package commands

import (
	"context"
)

// RenameCategoryCommandHandler handles category renames.
type RenameCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewRenameCategoryCommandHandler creates a handler for category renames.
func NewRenameCategoryCommandHandler(uowFactory MenuUoWFactory) RenameCategoryCommandHandler {
	return RenameCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle renames the category and persists it.
func (h *RenameCategoryCommandHandler) Handle(ctx context.Context, cmd RenameCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	category, err := menuRepo.GetCategory(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	if err = category.Rename(cmd.Name()); err != nil {
		return err
	}

	if err = menuRepo.UpdateCategory(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
