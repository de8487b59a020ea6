package models

import "time"

// Theme is the user's color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Preferences is the singleton per-installation user state. It is created
// with defaults on first launch, hydrated from storage at startup, and
// written back after each mutation of consequence.
type Preferences struct {
	UserName             string     `json:"user_name"`
	SelectedCategories   []Category `json:"selected_categories,omitempty"`
	NotificationsEnabled bool       `json:"notifications_enabled"`
	ReminderTime         string     `json:"reminder_time"` // HH:MM format
	DailyCount           int        `json:"daily_count"`
	CurrentMood          *Mood      `json:"current_mood,omitempty"`
	Theme                Theme      `json:"theme"`

	StreakCount int        `json:"streak_count"`
	FirstOpened *time.Time `json:"first_opened,omitempty"`
	LastOpened  *time.Time `json:"last_opened,omitempty"`
	TotalViewed int        `json:"total_viewed"`

	// FavoriteIDs and ViewedIDs reference the seed pool by id; the pool
	// records themselves are never copied into preferences.
	FavoriteIDs []string `json:"favorite_ids,omitempty"`
	ViewedIDs   []string `json:"viewed_ids,omitempty"`

	TodayAffirmationID string     `json:"today_affirmation_id,omitempty"`
	LastRefresh        *time.Time `json:"last_refresh,omitempty"`

	OnboardingCompleted bool       `json:"onboarding_completed"`
	Premium             bool       `json:"premium"`
	PremiumExpiration   *time.Time `json:"premium_expiration,omitempty"`
}

// DefaultPreferences returns the first-launch state.
func DefaultPreferences() Preferences {
	return Preferences{
		NotificationsEnabled: true,
		ReminderTime:         "08:00",
		DailyCount:           3,
		Theme:                ThemeSystem,
	}
}

// AddFavorite inserts the id unless it is already present.
func (p *Preferences) AddFavorite(affirmationID string) {
	if !p.IsFavorite(affirmationID) {
		p.FavoriteIDs = append(p.FavoriteIDs, affirmationID)
	}
}

// RemoveFavorite deletes the id if present.
func (p *Preferences) RemoveFavorite(affirmationID string) {
	kept := p.FavoriteIDs[:0]
	for _, id := range p.FavoriteIDs {
		if id != affirmationID {
			kept = append(kept, id)
		}
	}
	p.FavoriteIDs = kept
}

func (p *Preferences) IsFavorite(affirmationID string) bool {
	for _, id := range p.FavoriteIDs {
		if id == affirmationID {
			return true
		}
	}
	return false
}

// StreakEmoji returns the badge for the current streak length.
func (p Preferences) StreakEmoji() string {
	switch {
	case p.StreakCount <= 0:
		return ""
	case p.StreakCount < 7:
		return "🔥"
	case p.StreakCount < 30:
		return "🔥🔥"
	case p.StreakCount < 100:
		return "🔥🔥🔥"
	case p.StreakCount < 365:
		return "💎"
	default:
		return "👑"
	}
}

// NextMilestone returns the next streak milestone ahead of the current count.
func (p Preferences) NextMilestone() int {
	switch {
	case p.StreakCount < 7:
		return 7
	case p.StreakCount < 30:
		return 30
	case p.StreakCount < 100:
		return 100
	case p.StreakCount < 365:
		return 365
	default:
		return 1000
	}
}
