package system

import (
	"testing"
)

func TestNotifyCmd_DisabledNotifications(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		t.Fatalf("failed to get preferences: %v", err)
	}
	prefs.NotificationsEnabled = false
	if err := ctx.Store.SavePreferences(prefs); err != nil {
		t.Fatalf("failed to save preferences: %v", err)
	}

	cmd := &NotifyCmd{DryRun: true}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("notify with disabled notifications should be a no-op, got: %v", err)
	}
}

func TestNotifyCmd_OutsideReminderWindow(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		t.Fatalf("failed to get preferences: %v", err)
	}
	prefs.ReminderTime = "00:00"
	if err := ctx.Store.SavePreferences(prefs); err != nil {
		t.Fatalf("failed to save preferences: %v", err)
	}

	cmd := &NotifyCmd{DryRun: true}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("dry-run notify failed: %v", err)
	}
}
