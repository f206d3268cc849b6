package commands

import (
	"context"
)

// UpdateMenuCommandHandler handles catalog item edits. Past orders keep the
// prices they were placed with; only future orders see the change.
type UpdateMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuCommandHandler creates a handler for catalog item edits.
func NewUpdateMenuCommandHandler(uowFactory MenuUoWFactory) UpdateMenuCommandHandler {
	return UpdateMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the patch to the catalog item and persists it.
func (h *UpdateMenuCommandHandler) Handle(ctx context.Context, cmd UpdateMenuCommand) error {
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
	aggregate, err := menuRepo.Get(ctx, cmd.MenuID())
	if err != nil {
		return err
	}

	if patch := cmd.Patch(); patch.CategoryID != nil {
		if _, err = menuRepo.GetCategory(ctx, *patch.CategoryID); err != nil {
			return err
		}
	}

	if err = aggregate.Apply(cmd.Patch()); err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
