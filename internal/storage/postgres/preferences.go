package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dailyglow/dailyglow/internal/models"
)

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
		INSERT INTO preferences (id, data, updated_at) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		string(data), time.Now().UTC().Format(time.RFC3339))
	return err
}
