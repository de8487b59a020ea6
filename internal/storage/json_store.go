package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dailyglow/dailyglow/internal/constants"
	"github.com/dailyglow/dailyglow/internal/models"
)

// document is the on-disk layout of the JSON backend: the whole store is
// one file, rewritten atomically on every mutation.
type document struct {
	Version     int                            `json:"version"`
	Settings    models.Settings                `json:"settings"`
	Preferences models.Preferences             `json:"preferences"`
	Journal     map[string]models.JournalEntry `json:"journal"`
}

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Settings: models.Settings{
			Timezone:              constants.DefaultTimezone,
			AutoBackup:            constants.DefaultAutoBackup,
			DefaultInsightsWindow: constants.DefaultInsightsWindow,
		},
		Preferences: models.DefaultPreferences(),
		Journal:     make(map[string]models.JournalEntry),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Journal == nil {
		s.doc.Journal = make(map[string]models.JournalEntry)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.doc == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) GetPreferences() (models.Preferences, error) {
	if s.doc == nil {
		return models.Preferences{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Preferences, nil
}

func (s *JSONStore) SavePreferences(prefs models.Preferences) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Preferences = prefs
	return s.save()
}

func (s *JSONStore) AddJournalEntry(entry models.JournalEntry) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, exists := s.doc.Journal[entry.ID]; exists {
		return fmt.Errorf("journal entry already exists: %s", entry.ID)
	}
	s.doc.Journal[entry.ID] = entry
	return s.save()
}

func (s *JSONStore) GetJournalEntry(id string) (models.JournalEntry, error) {
	if s.doc == nil {
		return models.JournalEntry{}, fmt.Errorf("storage not loaded")
	}
	entry, ok := s.doc.Journal[id]
	if !ok || entry.DeletedAt != nil {
		return models.JournalEntry{}, fmt.Errorf("journal entry not found: %s", id)
	}
	return entry, nil
}

func (s *JSONStore) GetAllJournalEntries(includeDeleted bool) ([]models.JournalEntry, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	var entries []models.JournalEntry
	for _, entry := range s.doc.Journal {
		if !includeDeleted && entry.DeletedAt != nil {
			continue
		}
		entries = append(entries, entry)
	}
	sortEntriesByDate(entries)
	return entries, nil
}

func (s *JSONStore) UpdateJournalEntry(entry models.JournalEntry) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	existing, ok := s.doc.Journal[entry.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("journal entry not found: %s", entry.ID)
	}
	s.doc.Journal[entry.ID] = entry
	return s.save()
}

func (s *JSONStore) DeleteJournalEntry(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	entry, ok := s.doc.Journal[id]
	if !ok || entry.DeletedAt != nil {
		return fmt.Errorf("journal entry not found: %s", id)
	}
	now := time.Now().UTC()
	entry.DeletedAt = &now
	s.doc.Journal[id] = entry
	return s.save()
}

func (s *JSONStore) RestoreJournalEntry(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	entry, ok := s.doc.Journal[id]
	if !ok || entry.DeletedAt == nil {
		return fmt.Errorf("journal entry not found: %s", id)
	}
	entry.DeletedAt = nil
	s.doc.Journal[id] = entry
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func sortEntriesByDate(entries []models.JournalEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}
