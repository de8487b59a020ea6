package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/dailyglow/dailyglow/internal/constants"
	"github.com/dailyglow/dailyglow/internal/engagement"
	"github.com/dailyglow/dailyglow/internal/models"
	"github.com/dailyglow/dailyglow/internal/tui/components/favorites"
	"github.com/dailyglow/dailyglow/internal/tui/components/journallist"
	"github.com/dailyglow/dailyglow/internal/utils"
)

var errEmptyEntry = errors.New("entry must not be empty")

// timeNow is a variable so tests can pin the clock.
var timeNow = time.Now

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Add Entry State
	if m.state == constants.StateAddEntry {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateJournal
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			now := timeNow()
			entry := models.JournalEntry{
				ID:            uuid.New().String(),
				Date:          utils.StartOfDay(now),
				Content:       m.entryForm.Content,
				AffirmationID: m.prefs.TodayAffirmationID,
				CreatedAt:     now,
			}
			if m.entryForm.Mood != "" {
				if mood, ok := models.ParseMood(m.entryForm.Mood); ok {
					entry.Mood = &mood
				}
			}
			for _, item := range strings.Split(m.entryForm.Gratitude, ",") {
				if trimmed := strings.TrimSpace(item); trimmed != "" {
					entry.Gratitude = append(entry.Gratitude, trimmed)
				}
			}

			if err := m.store.AddJournalEntry(entry); err == nil {
				m.refreshJournal()
				m.formError = ""
				m.state = constants.StateJournal
			} else {
				m.formError = "Failed to save entry: " + err.Error()
				m.state = constants.StateJournal
			}
		case huh.StateAborted:
			m.state = constants.StateJournal
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.store.DeleteJournalEntry(m.entryToDeleteID); err == nil {
					m.refreshJournal()
				}
				m.entryToDeleteID = ""
				m.state = constants.StateJournal
			case "n", "N", "esc", "q":
				m.entryToDeleteID = ""
				m.state = constants.StateJournal
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := msg.Height - 6
		if listHeight < 5 {
			listHeight = 5
		}
		m.journalModel.SetSize(msg.Width-4, listHeight)
		m.favoritesModel.SetSize(msg.Width-4, listHeight)

	case journallist.AddEntryMsg:
		m.entryForm = &EntryFormModel{}
		m.form = newEntryForm(m.entryForm)
		m.state = constants.StateAddEntry
		return m, m.form.Init()

	case journallist.DeleteEntryMsg:
		m.entryToDeleteID = msg.ID
		m.state = constants.StateConfirmDelete
		return m, nil

	case journallist.RestoreEntryMsg:
		if err := m.store.RestoreJournalEntry(msg.ID); err == nil {
			m.refreshJournal()
		}
		return m, nil

	case favorites.ToggleFavoriteMsg:
		engagement.ToggleFavorite(&m.prefs, msg.ID)
		if err := m.store.SavePreferences(m.prefs); err == nil {
			m.favoritesModel.SetPool(m.affirmations.Pool(), m.prefs)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			// Let list filtering consume plain 'q'
			if m.state == constants.StateJournal || m.state == constants.StateFavorites {
				if msg.String() == "q" {
					break
				}
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = nextState(m.state)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = prevState(m.state)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == constants.StateToday {
			switch {
			case key.Matches(msg, m.keys.Refresh):
				m.refreshDaily()
				return m, nil
			case key.Matches(msg, m.keys.Favorite):
				engagement.ToggleFavorite(&m.prefs, m.daily.ID)
				if err := m.store.SavePreferences(m.prefs); err == nil {
					m.favoritesModel.SetPool(m.affirmations.Pool(), m.prefs)
				}
				return m, nil
			}
		}
	}

	// Route remaining messages to the active component
	var cmd tea.Cmd
	switch m.state {
	case constants.StateJournal:
		m.journalModel, cmd = m.journalModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateFavorites:
		m.favoritesModel, cmd = m.favoritesModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// refreshDaily forces a new daily pick.
func (m *Model) refreshDaily() {
	now := timeNow()
	result := m.affirmations.SelectDaily(m.prefs.ViewedIDs, m.prefs.SelectedCategories)
	engagement.SetDailyPick(&m.prefs, result.Affirmation.ID, result.ResetHistory, now)
	m.affirmations.MarkShown(result.Affirmation.ID, now)
	if err := m.store.SavePreferences(m.prefs); err != nil {
		return
	}
	if a, ok := m.affirmations.Get(result.Affirmation.ID); ok {
		m.daily = a
	}
}

func nextState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateToday:
		return constants.StateFavorites
	case constants.StateFavorites:
		return constants.StateJournal
	case constants.StateJournal:
		return constants.StateInsights
	case constants.StateInsights:
		return constants.StateToday
	default:
		return s
	}
}

func prevState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateToday:
		return constants.StateInsights
	case constants.StateFavorites:
		return constants.StateToday
	case constants.StateJournal:
		return constants.StateFavorites
	case constants.StateInsights:
		return constants.StateJournal
	default:
		return s
	}
}
