package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dailyglow/dailyglow/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "dailyglow.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return store
}

func TestJSONInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dailyglow.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Fatal("second Init() should refuse to overwrite")
	}
}

func TestJSONLoadMissing(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Fatal("Load() on missing file should fail")
	}
}

func TestJSONPersistenceAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dailyglow.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	prefs, _ := store.GetPreferences()
	prefs.StreakCount = 9
	prefs.FavoriteIDs = []string{"morning-01"}
	if err := store.SavePreferences(prefs); err != nil {
		t.Fatal(err)
	}

	entry := models.JournalEntry{
		ID:        "e1",
		Date:      time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		Content:   "first entry",
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddJournalEntry(entry); err != nil {
		t.Fatal(err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	prefs, err := reopened.GetPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if prefs.StreakCount != 9 || len(prefs.FavoriteIDs) != 1 {
		t.Errorf("preferences not persisted: %+v", prefs)
	}
	if _, err := reopened.GetJournalEntry("e1"); err != nil {
		t.Errorf("journal entry not persisted: %v", err)
	}
}

func TestJSONJournalSoftDelete(t *testing.T) {
	store := newTestJSONStore(t)

	for i, id := range []string{"a", "b"} {
		entry := models.JournalEntry{
			ID:        id,
			Date:      time.Date(2025, 6, 10+i, 9, 0, 0, 0, time.UTC),
			Content:   "entry " + id,
			CreatedAt: time.Now().UTC(),
		}
		if err := store.AddJournalEntry(entry); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.DeleteJournalEntry("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetJournalEntry("a"); err == nil {
		t.Error("deleted entry still retrievable")
	}
	live, err := store.GetAllJournalEntries(false)
	if err != nil {
		t.Fatal(err)
	}
	if len(live) != 1 {
		t.Errorf("live entries = %d, want 1", len(live))
	}
	all, err := store.GetAllJournalEntries(true)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("all entries = %d, want 2", len(all))
	}

	if err := store.RestoreJournalEntry("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetJournalEntry("a"); err != nil {
		t.Errorf("restore failed: %v", err)
	}
}

func TestJSONDuplicateAdd(t *testing.T) {
	store := newTestJSONStore(t)
	entry := models.JournalEntry{
		ID:        "dup",
		Date:      time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		Content:   "once",
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddJournalEntry(entry); err != nil {
		t.Fatal(err)
	}
	if err := store.AddJournalEntry(entry); err == nil {
		t.Fatal("duplicate AddJournalEntry should fail")
	}
}
