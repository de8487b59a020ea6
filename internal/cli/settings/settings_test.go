package settings

import (
	"path/filepath"
	"testing"

	"github.com/dailyglow/dailyglow/internal/affirmations"
	"github.com/dailyglow/dailyglow/internal/cli"
	"github.com/dailyglow/dailyglow/internal/models"
	"github.com/dailyglow/dailyglow/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	svc, err := affirmations.NewService(models.SeedPool())
	if err != nil {
		t.Fatalf("failed to build affirmation service: %v", err)
	}

	ctx := &cli.Context{
		Store:        store,
		Affirmations: svc,
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, cleanup
}

func TestSettingsCmd_List(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{
		List: true,
	}

	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_UpdateName(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	name := "Ada"
	cmd := &SettingsCmd{Name: &name}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		t.Fatalf("failed to get preferences: %v", err)
	}
	if prefs.UserName != "Ada" {
		t.Errorf("UserName = %q, want %q", prefs.UserName, "Ada")
	}
}

func TestSettingsCmd_UpdateCategories(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	categories := "gratitude,peace"
	cmd := &SettingsCmd{Categories: &categories}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		t.Fatalf("failed to get preferences: %v", err)
	}
	if len(prefs.SelectedCategories) != 2 {
		t.Fatalf("SelectedCategories = %v, want 2 entries", prefs.SelectedCategories)
	}

	// Clearing with an empty string
	empty := ""
	cmd = &SettingsCmd{Categories: &empty}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings clear failed: %v", err)
	}
	prefs, _ = ctx.Store.GetPreferences()
	if len(prefs.SelectedCategories) != 0 {
		t.Errorf("SelectedCategories = %v, want empty", prefs.SelectedCategories)
	}
}

func TestSettingsCmd_InvalidReminderTime(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	bad := "25:99"
	cmd := &SettingsCmd{ReminderTime: &bad}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for invalid reminder time")
	}
}

func TestSettingsCmd_InvalidTimezone(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	bad := "Mars/Olympus_Mons"
	cmd := &SettingsCmd{Timezone: &bad}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestSettingsCmd_DailyCountBounds(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	for _, bad := range []int{0, 11, -3} {
		count := bad
		cmd := &SettingsCmd{DailyCount: &count}
		if err := cmd.Run(ctx); err == nil {
			t.Errorf("expected error for daily count %d", bad)
		}
	}

	good := 5
	cmd := &SettingsCmd{DailyCount: &good}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("valid daily count rejected: %v", err)
	}
	prefs, _ := ctx.Store.GetPreferences()
	if prefs.DailyCount != 5 {
		t.Errorf("DailyCount = %d, want 5", prefs.DailyCount)
	}
}

func TestSettingsCmd_Reset(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	name := "Ada"
	if err := (&SettingsCmd{Name: &name}).Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	if err := (&SettingsCmd{Reset: true}).Run(ctx); err != nil {
		t.Fatalf("settings reset failed: %v", err)
	}

	prefs, _ := ctx.Store.GetPreferences()
	if prefs.UserName != "" {
		t.Errorf("UserName after reset = %q, want empty", prefs.UserName)
	}
	if prefs.DailyCount != 3 {
		t.Errorf("DailyCount after reset = %d, want 3", prefs.DailyCount)
	}
}
