package commands

import (
	"context"
)

// DeleteMenuCommandHandler handles catalog item removal.
type DeleteMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewDeleteMenuCommandHandler creates a handler for catalog item removal.
func NewDeleteMenuCommandHandler(uowFactory MenuUoWFactory) DeleteMenuCommandHandler {
	return DeleteMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the catalog item.
func (h *DeleteMenuCommandHandler) Handle(ctx context.Context, cmd DeleteMenuCommand) error {
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

	if err := uow.MenuRepository().Delete(ctx, cmd.MenuID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
