package queries

import (
	"errors"

	"lytefood/internal/pkg/guard"
)

var (
	ErrGetSettingsQueryIsNotConstructed = errors.New(
		"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
	)
)

// GetSettingsQuery retrieves the site-wide presentation settings.
type GetSettingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSettingsQuery creates a parameterless settings query.
func NewGetSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

// SettingsResponse carries the public footer and landing page texts.
type SettingsResponse struct {
	Address                string `json:"address"`
	PhoneNumber            string `json:"phone_number"`
	Email                  string `json:"email"`
	Title                  string `json:"title"`
	HistoryTitle           string `json:"history_title"`
	HistoryContent         string `json:"history_content"`
	RestaurantTodayTitle   string `json:"restaurant_today_title"`
	RestaurantTodayContent string `json:"restaurant_today_content"`
	AchievementsTitle      string `json:"achievements_title"`
	AchievementsContent    string `json:"achievements_content"`
}
