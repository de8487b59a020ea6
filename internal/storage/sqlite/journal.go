package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dailyglow/dailyglow/internal/models"
)

const journalColumns = "id, entry_date, content, mood, affirmation_id, tags, gratitude, created_at, deleted_at"

func (s *Store) AddJournalEntry(entry models.JournalEntry) error {
	tags, err := marshalList(entry.Tags)
	if err != nil {
		return fmt.Errorf("failed to serialize tags: %w", err)
	}
	gratitude, err := marshalList(entry.Gratitude)
	if err != nil {
		return fmt.Errorf("failed to serialize gratitude: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO journal_entries (`+journalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Date.Format(time.RFC3339),
		entry.Content,
		nullableMood(entry.Mood),
		nullableString(entry.AffirmationID),
		tags,
		gratitude,
		entry.CreatedAt.Format(time.RFC3339),
		nullableTime(entry.DeletedAt),
	)
	return err
}

func (s *Store) GetJournalEntry(id string) (models.JournalEntry, error) {
	row := s.db.QueryRow(`
		SELECT `+journalColumns+`
		FROM journal_entries WHERE id = ? AND deleted_at IS NULL`, id)
	return scanJournalEntry(row)
}

func (s *Store) GetAllJournalEntries(includeDeleted bool) ([]models.JournalEntry, error) {
	query := "SELECT " + journalColumns + " FROM journal_entries"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY entry_date ASC"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		entry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) UpdateJournalEntry(entry models.JournalEntry) error {
	tags, err := marshalList(entry.Tags)
	if err != nil {
		return fmt.Errorf("failed to serialize tags: %w", err)
	}
	gratitude, err := marshalList(entry.Gratitude)
	if err != nil {
		return fmt.Errorf("failed to serialize gratitude: %w", err)
	}

	result, err := s.db.Exec(`
		UPDATE journal_entries
		SET entry_date = ?, content = ?, mood = ?, affirmation_id = ?, tags = ?, gratitude = ?
		WHERE id = ? AND deleted_at IS NULL`,
		entry.Date.Format(time.RFC3339),
		entry.Content,
		nullableMood(entry.Mood),
		nullableString(entry.AffirmationID),
		tags,
		gratitude,
		entry.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result, entry.ID)
}

func (s *Store) DeleteJournalEntry(id string) error {
	result, err := s.db.Exec(`
		UPDATE journal_entries SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireAffected(result, id)
}

func (s *Store) RestoreJournalEntry(id string) error {
	result, err := s.db.Exec(`
		UPDATE journal_entries SET deleted_at = NULL
		WHERE id = ? AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return err
	}
	return requireAffected(result, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJournalEntry(row rowScanner) (models.JournalEntry, error) {
	var e models.JournalEntry
	var date, createdAt string
	var mood, affirmationID, tags, gratitude, deletedAt sql.NullString

	err := row.Scan(&e.ID, &date, &e.Content, &mood, &affirmationID, &tags, &gratitude, &createdAt, &deletedAt)
	if err != nil {
		return models.JournalEntry{}, err
	}

	e.Date, err = time.Parse(time.RFC3339, date)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to parse entry_date: %w", err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if mood.Valid {
		m := models.Mood(mood.String)
		e.Mood = &m
	}
	if affirmationID.Valid {
		e.AffirmationID = affirmationID.String
	}
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &e.Tags); err != nil {
			return models.JournalEntry{}, fmt.Errorf("failed to parse tags: %w", err)
		}
	}
	if gratitude.Valid && gratitude.String != "" {
		if err := json.Unmarshal([]byte(gratitude.String), &e.Gratitude); err != nil {
			return models.JournalEntry{}, fmt.Errorf("failed to parse gratitude: %w", err)
		}
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.JournalEntry{}, fmt.Errorf("failed to parse deleted_at: %w", err)
		}
		e.DeletedAt = &t
	}

	return e, nil
}

func marshalList(items []string) (sql.NullString, error) {
	if len(items) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullableMood(m *models.Mood) sql.NullString {
	if m == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*m), Valid: true}
}

func nullableTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339), Valid: true}
}

func requireAffected(result sql.Result, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("journal entry not found: %s", id)
	}
	return nil
}
