package commands

import (
	"context"
)

// UpdateSettingsCommandHandler handles edits to the singleton site settings.
type UpdateSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewUpdateSettingsCommandHandler creates a handler for settings edits.
func NewUpdateSettingsCommandHandler(uowFactory SettingsUoWFactory) UpdateSettingsCommandHandler {
	return UpdateSettingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the settings row, applies the patch, and saves it back.
func (h *UpdateSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) error {
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

	settingsRepo := uow.SettingsRepository()
	current, err := settingsRepo.Get(ctx)
	if err != nil {
		return err
	}

	current.Apply(cmd.Patch())

	if err = settingsRepo.Save(ctx, current); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
