package storage

import "github.com/dailyglow/dailyglow/internal/models"

// Provider is the persistence contract shared by the SQLite, PostgreSQL,
// and JSON backends.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Preferences (singleton user state)
	GetPreferences() (models.Preferences, error)
	SavePreferences(models.Preferences) error

	// Journal entries
	AddJournalEntry(models.JournalEntry) error
	GetJournalEntry(id string) (models.JournalEntry, error)
	GetAllJournalEntries(includeDeleted bool) ([]models.JournalEntry, error)
	UpdateJournalEntry(models.JournalEntry) error
	DeleteJournalEntry(id string) error
	RestoreJournalEntry(id string) error

	// Utils
	GetConfigPath() string
}
