// Package settings contains the site-wide content block shown in the public
// footer and the "about" page. A single row holds it all.
package settings

// SingletonID is the fixed primary key of the one settings row.
const SingletonID = 1

// Settings is the editable site content. All fields are plain text managed by
// super-admins; empty strings render as absent on the storefront.
type Settings struct {
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

// Default returns the content seeded when no settings row exists yet.
func Default() Settings {
	return Settings{
		Title: "LyteFood",
	}
}

// Patch holds the fields a super-admin may change. Nil fields stay untouched.
type Patch struct {
	Address                *string
	PhoneNumber            *string
	Email                  *string
	Title                  *string
	HistoryTitle           *string
	HistoryContent         *string
	RestaurantTodayTitle   *string
	RestaurantTodayContent *string
	AchievementsTitle      *string
	AchievementsContent    *string
}

// Apply updates the settings with the non-nil fields of the patch.
func (s *Settings) Apply(patch Patch) {
	if patch.Address != nil {
		s.Address = *patch.Address
	}
	if patch.PhoneNumber != nil {
		s.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Email != nil {
		s.Email = *patch.Email
	}
	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.HistoryTitle != nil {
		s.HistoryTitle = *patch.HistoryTitle
	}
	if patch.HistoryContent != nil {
		s.HistoryContent = *patch.HistoryContent
	}
	if patch.RestaurantTodayTitle != nil {
		s.RestaurantTodayTitle = *patch.RestaurantTodayTitle
	}
	if patch.RestaurantTodayContent != nil {
		s.RestaurantTodayContent = *patch.RestaurantTodayContent
	}
	if patch.AchievementsTitle != nil {
		s.AchievementsTitle = *patch.AchievementsTitle
	}
	if patch.AchievementsContent != nil {
		s.AchievementsContent = *patch.AchievementsContent
	}
}
