package commands

import (
	"context"

	"lytefood/internal/core/domain/model/menu"
)

// CreateMenuCommandHandler handles catalog item creation. The category must
// exist; a missing one surfaces as errs.ErrObjectNotFound.
type CreateMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuCommandHandler creates a handler for catalog item creation.
func NewCreateMenuCommandHandler(uowFactory MenuUoWFactory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the catalog item and returns its new id.
func (h *CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	if _, err := menuRepo.GetCategory(ctx, cmd.CategoryID()); err != nil {
		return 0, err
	}

	aggregate, err := menu.NewMenu(cmd.Name(), cmd.Description(), cmd.ImageURL(), cmd.Price(), cmd.CategoryID())
	if err != nil {
		return 0, err
	}

	if err = menuRepo.Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
