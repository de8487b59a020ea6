package journal

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

func TestJournalAddCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &JournalAddCmd{
		Content:   "Grateful for small things today",
		Mood:      "grateful",
		Tags:      "morning, reflection",
		Gratitude: "coffee, sunshine",
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("journal add failed: %v", err)
	}

	entries, err := ctx.Store.GetAllJournalEntries(false)
	if err != nil {
		t.Fatalf("failed to get entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.Mood == nil || *e.Mood != models.MoodGrateful {
		t.Errorf("Mood = %v, want grateful", e.Mood)
	}
	if len(e.Tags) != 2 || e.Tags[0] != "morning" {
		t.Errorf("Tags = %v, want [morning reflection]", e.Tags)
	}
	if len(e.Gratitude) != 2 {
		t.Errorf("Gratitude = %v, want 2 items", e.Gratitude)
	}
}

func TestJournalAddCmd_EmptyContent(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &JournalAddCmd{Content: "   "}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for blank content")
	}
}

func TestJournalAddCmd_InvalidDate(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &JournalAddCmd{Content: "hello", Date: "06/10/2025"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for invalid date format")
	}
}

func TestJournalAddCmd_ExplicitDate(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &JournalAddCmd{Content: "backdated", Date: "2025-06-10"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("journal add failed: %v", err)
	}

	entries, _ := ctx.Store.GetAllJournalEntries(false)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if got := entries[0].Date.Format("2006-01-02"); got != "2025-06-10" {
		t.Errorf("Date = %s, want 2025-06-10", got)
	}
}

func TestJournalDeleteAndRestore(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&JournalAddCmd{Content: "first entry"}).Run(ctx); err != nil {
		t.Fatalf("journal add failed: %v", err)
	}
	entries, _ := ctx.Store.GetAllJournalEntries(false)
	id := entries[0].ID

	if err := (&JournalDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("journal delete failed: %v", err)
	}
	live, _ := ctx.Store.GetAllJournalEntries(false)
	if len(live) != 0 {
		t.Fatalf("got %d live entries after delete, want 0", len(live))
	}

	// Restore by id prefix
	if err := (&JournalRestoreCmd{ID: id[:8]}).Run(ctx); err != nil {
		t.Fatalf("journal restore failed: %v", err)
	}
	live, _ = ctx.Store.GetAllJournalEntries(false)
	if len(live) != 1 {
		t.Errorf("got %d live entries after restore, want 1", len(live))
	}
}

func TestJournalEditCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&JournalAddCmd{Content: "draft"}).Run(ctx); err != nil {
		t.Fatalf("journal add failed: %v", err)
	}
	entries, _ := ctx.Store.GetAllJournalEntries(false)
	id := entries[0].ID

	cmd := &JournalEditCmd{ID: id, Content: "final", Mood: "calm"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("journal edit failed: %v", err)
	}

	updated, err := ctx.Store.GetJournalEntry(id)
	if err != nil {
		t.Fatalf("failed to get entry: %v", err)
	}
	if updated.Content != "final" {
		t.Errorf("Content = %q, want %q", updated.Content, "final")
	}
	if updated.Mood == nil || *updated.Mood != models.MoodCalm {
		t.Errorf("Mood = %v, want calm", updated.Mood)
	}
}

func TestResolveEntryAmbiguousPrefix(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	// Unknown id
	if _, err := resolveEntry(ctx, "does-not-exist", false); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"  ", 0},
		{"a", 1},
		{"a, b, c", 3},
		{"a,,b", 2},
	}
	for _, tt := range tests {
		if got := splitList(tt.input); len(got) != tt.want {
			t.Errorf("splitList(%q) = %v, want %d items", tt.input, got, tt.want)
		}
	}
}
