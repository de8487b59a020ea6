package models

import "time"

// AchievementCategory groups achievements by the counter they derive from.
type AchievementCategory string

const (
	AchievementStreak    AchievementCategory = "streak"
	AchievementViews     AchievementCategory = "views"
	AchievementFavorites AchievementCategory = "favorites"
	AchievementJournal   AchievementCategory = "journal"
)

// Achievement is a derived read model: progress is recomputed from the
// underlying counters rather than mutated independently.
type Achievement struct {
	ID          string              `json:"id"`
	Category    AchievementCategory `json:"category"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Required    int                 `json:"required"`
	Progress    int                 `json:"progress"`
	Unlocked    bool                `json:"unlocked"`
	UnlockedAt  *time.Time          `json:"unlocked_at,omitempty"`
	Points      int                 `json:"points"`
}

// Percent returns unlock progress clamped to [0, 1].
func (a Achievement) Percent() float64 {
	if a.Required <= 0 {
		return 1
	}
	p := float64(a.Progress) / float64(a.Required)
	if p > 1 {
		return 1
	}
	return p
}
