package queries

import (
	"context"

	"lytefood/internal/core/domain/model/settings"

	"gorm.io/gorm"
)

// GetSettingsQueryHandler retrieves the site settings row.
type GetSettingsQueryHandler struct {
	db *gorm.DB
}

// NewGetSettingsQueryHandler creates a handler for settings reads.
func NewGetSettingsQueryHandler(db *gorm.DB) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{db: db}
}

// Handle returns the settings singleton, falling back to defaults when the
// row has not been written yet.
func (h GetSettingsQueryHandler) Handle(ctx context.Context, query GetSettingsQuery) (SettingsResponse, error) {
	if err := query.Validate(); err != nil {
		return SettingsResponse{}, err
	}

	var rows []SettingsResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT address, phone_number, email, title,
		       history_title, history_content,
		       restaurant_today_title, restaurant_today_content,
		       achievements_title, achievements_content
		FROM settings
		WHERE id = ?
	`, settings.SingletonID).Scan(&rows).Error
	if err != nil {
		return SettingsResponse{}, err
	}
	if len(rows) == 0 {
		defaults := settings.Default()
		return SettingsResponse{
			Address:                defaults.Address,
			PhoneNumber:            defaults.PhoneNumber,
			Email:                  defaults.Email,
			Title:                  defaults.Title,
			HistoryTitle:           defaults.HistoryTitle,
			HistoryContent:         defaults.HistoryContent,
			RestaurantTodayTitle:   defaults.RestaurantTodayTitle,
			RestaurantTodayContent: defaults.RestaurantTodayContent,
			AchievementsTitle:      defaults.AchievementsTitle,
			AchievementsContent:    defaults.AchievementsContent,
		}, nil
	}

	return rows[0], nil
}
