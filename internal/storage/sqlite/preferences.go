package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dailyglow/dailyglow/internal/models"
)

// Preferences are stored as a single JSON document in a one-row table. The
// document evolves with the model without needing a schema migration per
// field.

func (s *Store) GetPreferences() (models.Preferences, error) {
	row := s.db.QueryRow("SELECT data FROM preferences WHERE id = 1")

	var data string
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Preferences{}, fmt.Errorf("preferences not found")
		}
		return models.Preferences{}, err
	}

	var prefs models.Preferences
	if err := json.Unmarshal([]byte(data), &prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to parse preferences: %w", err)
	}
	return prefs, nil
}

func (s *Store) SavePreferences(prefs models.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to serialize preferences: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO preferences (id, data, updated_at)
		VALUES (1, ?, ?)`,
		string(data), time.Now().UTC().Format(time.RFC3339))
	return err
}
