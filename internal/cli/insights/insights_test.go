package insights

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dailyglow/dailyglow/internal/affirmations"
	"github.com/dailyglow/dailyglow/internal/analytics"
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

func TestInsightsCmd_EmptyJournal(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &InsightsCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("insights on empty journal failed: %v", err)
	}
}

func TestInsightsCmd_WithEntries(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	mood := models.MoodGrateful
	entry := models.JournalEntry{
		ID:        "entry-1",
		Date:      time.Now().AddDate(0, 0, -1),
		Content:   "grateful for quiet mornings",
		Mood:      &mood,
		Gratitude: []string{"coffee"},
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddJournalEntry(entry); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}

	for _, window := range []string{"week", "month", "quarter", "all"} {
		cmd := &InsightsCmd{Window: window, Words: true}
		if err := cmd.Run(ctx); err != nil {
			t.Errorf("insights for window %q failed: %v", window, err)
		}
	}

	// JSON output path
	cmd := &InsightsCmd{JSON: true}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("insights JSON failed: %v", err)
	}
}

func TestInsightsCmd_UnknownWindow(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &InsightsCmd{Window: "fortnight"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for unknown window")
	}
}

func TestResolveWindowDefaultsFromSettings(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	settings.DefaultInsightsWindow = int(analytics.WindowWeek)
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	cmd := &InsightsCmd{}
	window, err := cmd.resolveWindow(ctx)
	if err != nil {
		t.Fatalf("resolveWindow failed: %v", err)
	}
	if window != analytics.WindowWeek {
		t.Errorf("window = %v, want week", window)
	}
}
