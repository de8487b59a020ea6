package cli

import (
	"fmt"

	"github.com/dailyglow/dailyglow/internal/affirmations"
	"github.com/dailyglow/dailyglow/internal/engagement"
	"github.com/dailyglow/dailyglow/internal/models"
)

type TodayCmd struct {
	Refresh bool `short:"r" help:"Force a new pick instead of reusing today's."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := ctx.Now()
	prefs, err := ctx.OpenApp(now)
	if err != nil {
		return err
	}

	// Reuse today's pick unless it is stale or a refresh was requested
	if !c.Refresh && prefs.TodayAffirmationID != "" && affirmations.DailyStillValid(prefs.LastRefresh, now) {
		if a, ok := ctx.Affirmations.Get(prefs.TodayAffirmationID); ok {
			printDaily(a.Category.Icon(), a.DisplayText(prefs.UserName), &prefs)
			return nil
		}
	}

	result := ctx.Affirmations.SelectDaily(prefs.ViewedIDs, prefs.SelectedCategories)
	engagement.SetDailyPick(&prefs, result.Affirmation.ID, result.ResetHistory, now)
	ctx.Affirmations.MarkShown(result.Affirmation.ID, now)
	if err := ctx.Store.SavePreferences(prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	printDaily(result.Affirmation.Category.Icon(), result.Affirmation.DisplayText(prefs.UserName), &prefs)
	return nil
}

func printDaily(icon, text string, prefs *models.Preferences) {
	fmt.Println()
	fmt.Printf("  %s %s\n", icon, text)
	fmt.Println()
	if prefs.StreakCount > 0 {
		fmt.Printf("  %s %d-day streak (next milestone: %d)\n", prefs.StreakEmoji(), prefs.StreakCount, prefs.NextMilestone())
	}
}
