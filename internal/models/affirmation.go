package models

import (
	"strings"
	"time"
)

// NamePlaceholder is replaced with the user's name when rendering
// personalized affirmation text.
const NamePlaceholder = "[NAME]"

// Affirmation is a single entry in the seed pool. Records are created at
// pool-load time and mutated in place only for LastShown/ShowCount; favorite
// state lives in Preferences as an id set.
type Affirmation struct {
	ID               string     `json:"id"`
	Text             string     `json:"text"`
	Category         Category   `json:"category"`
	Mood             Mood       `json:"mood"`
	DateAdded        time.Time  `json:"date_added"`
	LastShown        *time.Time `json:"last_shown,omitempty"`
	ShowCount        int        `json:"show_count"`
	Personalized     bool       `json:"personalized"`
	PersonalizedText string     `json:"personalized_text,omitempty"`
}

// DisplayText resolves the [NAME] placeholder against the given user name.
func (a Affirmation) DisplayText(userName string) string {
	text := a.Text
	if a.Personalized && a.PersonalizedText != "" {
		text = a.PersonalizedText
	}
	return strings.ReplaceAll(text, NamePlaceholder, userName)
}

// MarkShown stamps the affirmation as displayed at the given time.
func (a *Affirmation) MarkShown(now time.Time) {
	a.LastShown = &now
	a.ShowCount++
}
