package system

import (
	"fmt"

	"github.com/dailyglow/dailyglow/internal/cli"
	"github.com/dailyglow/dailyglow/internal/constants"
	"github.com/dailyglow/dailyglow/internal/notifier"
)

type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	if !prefs.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in preferences.")
		}
		return nil
	}

	// Fire only in the minute the reminder is due; a scheduler invokes this
	// command once per minute.
	now := ctx.Now()
	if now.Format(constants.TimeFormat) != prefs.ReminderTime {
		if c.DryRun {
			fmt.Printf("Reminder due at %s, not now.\n", prefs.ReminderTime)
		}
		return nil
	}

	msg := "Time for your daily glow ✨"
	if a, ok := ctx.Affirmations.Get(prefs.TodayAffirmationID); ok {
		msg = a.DisplayText(prefs.UserName)
	}

	if c.DryRun {
		fmt.Println("[DryRun] " + msg)
		return nil
	}
	if err := notifier.New().Notify(msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
