package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dailyglow/dailyglow/internal/affirmations"
	"github.com/dailyglow/dailyglow/internal/backup"
	"github.com/dailyglow/dailyglow/internal/engagement"
	"github.com/dailyglow/dailyglow/internal/logger"
	"github.com/dailyglow/dailyglow/internal/models"
	"github.com/dailyglow/dailyglow/internal/storage"
	"github.com/dailyglow/dailyglow/internal/utils"
)

type Context struct {
	Store        storage.Provider
	Affirmations *affirmations.Service
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	settings, err := c.Store.GetSettings()
	if err == nil && !settings.AutoBackup {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Now returns the current time in the configured timezone, falling back to
// local time when settings are unavailable or invalid.
func (c *Context) Now() time.Time {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Now()
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		logger.Warn("Invalid timezone in settings, using local time", "timezone", settings.Timezone)
		return time.Now()
	}
	return now
}

// OpenApp loads preferences, applies the daily-open streak transition, and
// persists the result. Commands that count as "opening the app" route
// through this.
func (c *Context) OpenApp(now time.Time) (models.Preferences, error) {
	prefs, err := c.Store.GetPreferences()
	if err != nil {
		return models.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}

	update := engagement.ApplyOpen(&prefs, now)
	if update.Changed {
		if err := c.Store.SavePreferences(prefs); err != nil {
			return models.Preferences{}, fmt.Errorf("failed to save preferences: %w", err)
		}
		if update.Celebrate {
			fmt.Printf("🎉 %d-day streak! Keep the glow going.\n", update.Streak)
		}
	}
	return prefs, nil
}

// ParseCategories parses a comma-separated category list
func ParseCategories(s string) ([]models.Category, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var categories []models.Category
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		c, ok := models.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("unknown category %q (valid: %s)", name, categoryNames())
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func categoryNames() string {
	var names []string
	for _, c := range models.AllCategories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// FormatAffirmation renders an affirmation line for list output
func FormatAffirmation(a models.Affirmation, userName string, favorite bool) string {
	marker := " "
	if favorite {
		marker = "★"
	}
	return fmt.Sprintf("%s %s %s  [%s]", marker, a.Category.Icon(), a.DisplayText(userName), a.Category.DisplayName())
}
