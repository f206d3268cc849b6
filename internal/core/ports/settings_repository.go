package ports

import (
	"context"

	"lytefood/internal/core/domain/model/settings"
)

// SettingsRepository defines the persistence contract for the singleton site
// settings row.
type SettingsRepository interface {
	// Get retrieves the settings, seeding the default row when none exists.
	Get(ctx context.Context) (settings.Settings, error)

	// Save overwrites the settings row.
	Save(ctx context.Context, s settings.Settings) error
}
