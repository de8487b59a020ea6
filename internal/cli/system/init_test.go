package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dailyglow/dailyglow/internal/affirmations"
	"github.com/dailyglow/dailyglow/internal/cli"
	"github.com/dailyglow/dailyglow/internal/models"
	"github.com/dailyglow/dailyglow/internal/storage"
	"github.com/dailyglow/dailyglow/internal/storage/sqlite"
)

func setupTestInitDB(t *testing.T) (*cli.Context, string, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
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

	return ctx, dbPath, cleanup
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("init command failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("second init failed (should be idempotent): %v", err)
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("initial init failed: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("database missing after init: %v", err)
	}

	// Write something so we can tell the reset happened
	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	prefs, _ := ctx.Store.GetPreferences()
	prefs.UserName = "Ada"
	if err := ctx.Store.SavePreferences(prefs); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("force init failed: %v", err)
	}

	fresh, err := ctx.Store.GetPreferences()
	if err != nil {
		t.Fatalf("failed to get preferences after force init: %v", err)
	}
	if fresh.UserName != "" {
		t.Errorf("UserName after force init = %q, want empty", fresh.UserName)
	}
}

func TestInitCmd_MigratesFromJSONSource(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	// Build a populated JSON source store
	sourcePath := filepath.Join(t.TempDir(), "source.json")
	if err := seedJSONSource(t, sourcePath); err != nil {
		t.Fatalf("failed to seed source: %v", err)
	}

	cmd := &InitCmd{Source: sourcePath}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init with source failed: %v", err)
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		t.Fatalf("failed to get preferences: %v", err)
	}
	if prefs.UserName != "Grace" {
		t.Errorf("UserName = %q, want %q", prefs.UserName, "Grace")
	}

	entries, err := ctx.Store.GetAllJournalEntries(true)
	if err != nil {
		t.Fatalf("failed to get entries: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d migrated entries, want 1", len(entries))
	}
}

func seedJSONSource(t *testing.T, path string) error {
	t.Helper()

	source := storage.NewJSONStore(path)
	if err := source.Init(); err != nil {
		return err
	}
	if err := source.Load(); err != nil {
		return err
	}
	defer source.Close()

	prefs, err := source.GetPreferences()
	if err != nil {
		return err
	}
	prefs.UserName = "Grace"
	if err := source.SavePreferences(prefs); err != nil {
		return err
	}

	return source.AddJournalEntry(models.JournalEntry{
		ID:        "entry-1",
		Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Content:   "migrated entry",
		CreatedAt: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
	})
}

func TestMaskPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"url with password",
			"postgres://alice:secret@db:5432/glow",
			"postgres://alice:****@db:5432/glow",
		},
		{
			"url without password",
			"postgres://alice@db:5432/glow",
			"postgres://alice@db:5432/glow",
		},
		{
			"dsn with password",
			"host=db user=alice password=secret dbname=glow",
			"host=db user=alice password=**** dbname=glow",
		},
		{
			"dsn without password",
			"host=db user=alice dbname=glow",
			"host=db user=alice dbname=glow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskPassword(tt.input); got != tt.want {
				t.Errorf("maskPassword(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
