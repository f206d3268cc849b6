package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/settings"
	"lytefood/internal/pkg/guard"
)

var (
	ErrUpdateSettingsCommandIsNotConstructed = errors.New(
		"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
	)
)

// UpdateSettingsCommand represents a super-admin editing the site content.
type UpdateSettingsCommand struct { //nolint:recvcheck //using for validation
	patch settings.Patch

	guard guard.ConstructorGuard
}

// NewUpdateSettingsCommand creates a command to patch the site settings.
func NewUpdateSettingsCommand(patch settings.Patch) UpdateSettingsCommand {
	return UpdateSettingsCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c UpdateSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingsCommandIsNotConstructed)
}

// Patch returns the fields to change.
func (c UpdateSettingsCommand) Patch() settings.Patch {
	return c.patch
}
