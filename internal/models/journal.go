package models

import "time"

// JournalEntry is a single dated journal record. Date is immutable after
// creation; edits happen by full replacement.
type JournalEntry struct {
	ID            string     `json:"id"`
	Date          time.Time  `json:"date"`
	Content       string     `json:"content"`
	Mood          *Mood      `json:"mood,omitempty"`
	AffirmationID string     `json:"affirmation_id,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	Gratitude     []string   `json:"gratitude,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

// WordCount counts whitespace-separated tokens in the entry content.
func (e JournalEntry) WordCount() int {
	count := 0
	inWord := false
	for _, r := range e.Content {
		switch r {
		case ' ', '\t', '\n', '\r':
			inWord = false
		default:
			if !inWord {
				count++
			}
			inWord = true
		}
	}
	return count
}
