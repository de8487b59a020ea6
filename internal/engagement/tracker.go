// Package engagement tracks how the user interacts with the app over time:
// the daily open streak, view counts, favorites, and the achievements
// derived from all of them. Every function here is a pure transformation
// over preferences; persistence stays with the caller.
package engagement

import (
	"time"

	"github.com/dailyglow/dailyglow/internal/constants"
	"github.com/dailyglow/dailyglow/internal/models"
	"github.com/dailyglow/dailyglow/internal/utils"
)

// StreakUpdate describes the outcome of an app open. Changed is false for
// repeat opens on the same calendar day, in which case LastOpened carries
// the previous value unchanged.
type StreakUpdate struct {
	Streak     int
	LastOpened time.Time
	Changed    bool
	Celebrate  bool
}

// UpdateStreakOnOpen computes the streak transition for an open at now.
// A first-ever open starts the streak at 1, a consecutive-day open extends
// it, a same-day open leaves it alone, and any gap resets it to 1.
// Celebrate fires whenever the streak lands on a multiple of seven.
func UpdateStreakOnOpen(streak int, lastOpened *time.Time, now time.Time) StreakUpdate {
	if lastOpened == nil {
		return StreakUpdate{Streak: 1, LastOpened: now, Changed: true, Celebrate: false}
	}

	days := utils.DaysBetween(*lastOpened, now)
	switch {
	case days == 0:
		return StreakUpdate{Streak: streak, LastOpened: *lastOpened, Changed: false}
	case days == 1:
		next := streak + 1
		return StreakUpdate{
			Streak:     next,
			LastOpened: now,
			Changed:    true,
			Celebrate:  next%constants.StreakMilestoneInterval == 0,
		}
	default:
		return StreakUpdate{Streak: 1, LastOpened: now, Changed: true}
	}
}

// ApplyOpen runs the streak transition against the preferences in place and
// returns the update so callers can react to Celebrate.
func ApplyOpen(prefs *models.Preferences, now time.Time) StreakUpdate {
	if prefs.FirstOpened == nil {
		first := now
		prefs.FirstOpened = &first
	}
	update := UpdateStreakOnOpen(prefs.StreakCount, prefs.LastOpened, now)
	if update.Changed {
		prefs.StreakCount = update.Streak
		opened := update.LastOpened
		prefs.LastOpened = &opened
	}
	return update
}

// RecordView registers that the user saw an affirmation. The viewed history
// keeps only the most recent entries; the total counter is unbounded.
func RecordView(prefs *models.Preferences, affirmationID string) {
	prefs.TotalViewed++
	prefs.ViewedIDs = append(prefs.ViewedIDs, affirmationID)
	if len(prefs.ViewedIDs) > constants.RecentListMax {
		prefs.ViewedIDs = prefs.ViewedIDs[len(prefs.ViewedIDs)-constants.RecentListMax:]
	}
}

// SetDailyPick records the day's selection, optionally clearing the viewed
// history first when the selector had to abandon its exclusion window.
func SetDailyPick(prefs *models.Preferences, affirmationID string, resetHistory bool, now time.Time) {
	if resetHistory {
		prefs.ViewedIDs = nil
	}
	prefs.TodayAffirmationID = affirmationID
	refreshed := now
	prefs.LastRefresh = &refreshed
	RecordView(prefs, affirmationID)
}

// ToggleFavorite flips the favorite state of an affirmation and reports
// whether it is now favorited.
func ToggleFavorite(prefs *models.Preferences, affirmationID string) bool {
	if prefs.IsFavorite(affirmationID) {
		prefs.RemoveFavorite(affirmationID)
		return false
	}
	prefs.AddFavorite(affirmationID)
	return true
}

type achievementSpec struct {
	id          string
	category    models.AchievementCategory
	title       string
	description string
	required    int
	points      int
}

var achievementSpecs = []achievementSpec{
	{"streak-7", models.AchievementStreak, "One Week Strong", "Open the app 7 days in a row", 7, 10},
	{"streak-30", models.AchievementStreak, "Monthly Devotion", "Open the app 30 days in a row", 30, 50},
	{"streak-100", models.AchievementStreak, "Century Club", "Open the app 100 days in a row", 100, 200},
	{"streak-365", models.AchievementStreak, "A Full Year", "Open the app 365 days in a row", 365, 1000},
	{"views-10", models.AchievementViews, "Getting Started", "View 10 affirmations", 10, 5},
	{"views-100", models.AchievementViews, "Daily Reader", "View 100 affirmations", 100, 25},
	{"views-1000", models.AchievementViews, "Affirmation Devotee", "View 1000 affirmations", 1000, 100},
	{"favorites-5", models.AchievementFavorites, "Collector", "Favorite 5 affirmations", 5, 10},
	{"favorites-20", models.AchievementFavorites, "Curator", "Favorite 20 affirmations", 20, 40},
	{"journal-1", models.AchievementJournal, "First Entry", "Write your first journal entry", 1, 5},
	{"journal-10", models.AchievementJournal, "Reflective Mind", "Write 10 journal entries", 10, 25},
	{"journal-50", models.AchievementJournal, "Dedicated Journaler", "Write 50 journal entries", 50, 100},
}

// Achievements derives the full achievement list from current engagement
// numbers. Unlocked timestamps are not tracked; achievements are recomputed
// rather than stored.
func Achievements(prefs models.Preferences, journalCount int, now time.Time) []models.Achievement {
	progressFor := func(category models.AchievementCategory) int {
		switch category {
		case models.AchievementStreak:
			return prefs.StreakCount
		case models.AchievementViews:
			return prefs.TotalViewed
		case models.AchievementFavorites:
			return len(prefs.FavoriteIDs)
		case models.AchievementJournal:
			return journalCount
		default:
			return 0
		}
	}

	out := make([]models.Achievement, 0, len(achievementSpecs))
	for _, spec := range achievementSpecs {
		progress := progressFor(spec.category)
		a := models.Achievement{
			ID:          spec.id,
			Category:    spec.category,
			Title:       spec.title,
			Description: spec.description,
			Required:    spec.required,
			Progress:    progress,
			Points:      spec.points,
		}
		if progress >= spec.required {
			a.Unlocked = true
			unlocked := now
			a.UnlockedAt = &unlocked
		}
		out = append(out, a)
	}
	return out
}
