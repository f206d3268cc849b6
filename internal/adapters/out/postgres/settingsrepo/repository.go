// Package settingsrepo persists the singleton site settings row.
package settingsrepo

import (
	"context"
	"errors"

	"lytefood/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsDTO represents the single settings row. Its id is always
// settings.SingletonID.
type SettingsDTO struct {
	ID                     int64 `gorm:"primaryKey"`
	Address                string
	PhoneNumber            string
	Email                  string
	Title                  string
	HistoryTitle           string
	HistoryContent         string
	RestaurantTodayTitle   string
	RestaurantTodayContent string
	AchievementsTitle      string
	AchievementsContent    string
}

func (SettingsDTO) TableName() string {
	return "settings"
}

func fromDomain(s settings.Settings) SettingsDTO {
	return SettingsDTO{
		ID:                     settings.SingletonID,
		Address:                s.Address,
		PhoneNumber:            s.PhoneNumber,
		Email:                  s.Email,
		Title:                  s.Title,
		HistoryTitle:           s.HistoryTitle,
		HistoryContent:         s.HistoryContent,
		RestaurantTodayTitle:   s.RestaurantTodayTitle,
		RestaurantTodayContent: s.RestaurantTodayContent,
		AchievementsTitle:      s.AchievementsTitle,
		AchievementsContent:    s.AchievementsContent,
	}
}

func toDomain(dto SettingsDTO) settings.Settings {
	return settings.Settings{
		Address:                dto.Address,
		PhoneNumber:            dto.PhoneNumber,
		Email:                  dto.Email,
		Title:                  dto.Title,
		HistoryTitle:           dto.HistoryTitle,
		HistoryContent:         dto.HistoryContent,
		RestaurantTodayTitle:   dto.RestaurantTodayTitle,
		RestaurantTodayContent: dto.RestaurantTodayContent,
		AchievementsTitle:      dto.AchievementsTitle,
		AchievementsContent:    dto.AchievementsContent,
	}
}

// GormSettingsRepository implements ports.SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get retrieves the settings row, seeding the default one when none exists.
func (r *GormSettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	var dto SettingsDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", settings.SingletonID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := settings.Default()
			seed := fromDomain(defaults)
			if err := r.db.WithContext(ctx).Create(&seed).Error; err != nil {
				return settings.Settings{}, err
			}
			return defaults, nil
		}
		return settings.Settings{}, err
	}

	return toDomain(dto), nil
}

// Save overwrites the settings row, creating it when missing.
func (r *GormSettingsRepository) Save(ctx context.Context, s settings.Settings) error {
	dto := fromDomain(s)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
