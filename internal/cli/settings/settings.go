package settings

import (
	"fmt"
	"strings"

	"github.com/dailyglow/dailyglow/internal/analytics"
	"github.com/dailyglow/dailyglow/internal/cli"
	"github.com/dailyglow/dailyglow/internal/models"
	"github.com/dailyglow/dailyglow/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone       *string `help:"IANA timezone name (e.g. Europe/Berlin) or 'Local'."`
	AutoBackup     *bool   `help:"Enable or disable automatic backups."`
	InsightsWindow *string `help:"Default insights window (week|month|quarter|all)."`

	Name          *string `help:"Your name, used to personalize affirmations."`
	Categories    *string `help:"Comma-separated preferred categories (empty clears)."`
	Notifications *bool   `help:"Enable or disable daily reminders."`
	ReminderTime  *string `help:"Daily reminder time in HH:MM format."`
	DailyCount    *int    `help:"Number of affirmations per day (1-10)."`
	Theme         *string `help:"Color theme (light|dark|system)."`

	Reset bool `help:"Reset preferences to defaults (keeps journal and settings)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	if c.List {
		printAll(settings, prefs)
		return nil
	}

	if c.Reset {
		fresh := models.DefaultPreferences()
		if err := ctx.Store.SavePreferences(fresh); err != nil {
			return fmt.Errorf("failed to save preferences: %w", err)
		}
		fmt.Println("Preferences reset to defaults.")
		return nil
	}

	settingsUpdated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("unknown timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		settingsUpdated = true
	}
	if c.AutoBackup != nil {
		settings.AutoBackup = *c.AutoBackup
		settingsUpdated = true
	}
	if c.InsightsWindow != nil {
		window, ok := analytics.ParseWindow(*c.InsightsWindow)
		if !ok {
			return fmt.Errorf("unknown window %q (valid: week, month, quarter, all)", *c.InsightsWindow)
		}
		settings.DefaultInsightsWindow = int(window)
		settingsUpdated = true
	}

	prefsUpdated := false
	if c.Name != nil {
		prefs.UserName = strings.TrimSpace(*c.Name)
		prefsUpdated = true
	}
	if c.Categories != nil {
		categories, err := cli.ParseCategories(*c.Categories)
		if err != nil {
			return err
		}
		prefs.SelectedCategories = categories
		prefsUpdated = true
	}
	if c.Notifications != nil {
		prefs.NotificationsEnabled = *c.Notifications
		prefsUpdated = true
	}
	if c.ReminderTime != nil {
		if !utils.ValidateClockFormat(*c.ReminderTime) {
			return fmt.Errorf("invalid reminder time %q (expected HH:MM)", *c.ReminderTime)
		}
		prefs.ReminderTime = *c.ReminderTime
		prefsUpdated = true
	}
	if c.DailyCount != nil {
		if *c.DailyCount < 1 || *c.DailyCount > 10 {
			return fmt.Errorf("daily count must be between 1 and 10")
		}
		prefs.DailyCount = *c.DailyCount
		prefsUpdated = true
	}
	if c.Theme != nil {
		switch models.Theme(*c.Theme) {
		case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
			prefs.Theme = models.Theme(*c.Theme)
			prefsUpdated = true
		default:
			return fmt.Errorf("unknown theme %q (valid: light, dark, system)", *c.Theme)
		}
	}

	if !settingsUpdated && !prefsUpdated {
		printAll(settings, prefs)
		return nil
	}

	if settingsUpdated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}
	if prefsUpdated {
		if err := ctx.Store.SavePreferences(prefs); err != nil {
			return fmt.Errorf("failed to save preferences: %w", err)
		}
	}
	fmt.Println("Settings updated.")
	return nil
}

func printAll(settings models.Settings, prefs models.Preferences) {
	fmt.Println("Application Settings:")
	fmt.Printf("  Timezone:         %s\n", settings.Timezone)
	fmt.Printf("  Auto Backup:      %v\n", settings.AutoBackup)
	fmt.Printf("  Insights Window:  %s\n", analytics.Window(settings.DefaultInsightsWindow))
	fmt.Println("\nYour Preferences:")
	fmt.Printf("  Name:             %s\n", orUnset(prefs.UserName))
	fmt.Printf("  Categories:       %s\n", orUnset(joinCategories(prefs.SelectedCategories)))
	fmt.Printf("  Notifications:    %v\n", prefs.NotificationsEnabled)
	fmt.Printf("  Reminder Time:    %s\n", prefs.ReminderTime)
	fmt.Printf("  Daily Count:      %d\n", prefs.DailyCount)
	fmt.Printf("  Theme:            %s\n", prefs.Theme)
}

func joinCategories(categories []models.Category) string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.DisplayName())
	}
	return strings.Join(names, ", ")
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
