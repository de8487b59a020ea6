package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dailyglow/dailyglow/internal/affirmations"
	"github.com/dailyglow/dailyglow/internal/analytics"
	"github.com/dailyglow/dailyglow/internal/constants"
	"github.com/dailyglow/dailyglow/internal/engagement"
	"github.com/dailyglow/dailyglow/internal/models"
	"github.com/dailyglow/dailyglow/internal/storage"
	"github.com/dailyglow/dailyglow/internal/tui/components/favorites"
	"github.com/dailyglow/dailyglow/internal/tui/components/journallist"
	"github.com/dailyglow/dailyglow/internal/utils"
)

type EntryFormModel struct {
	Content   string
	Mood      string
	Gratitude string
}

type Model struct {
	store        storage.Provider
	affirmations *affirmations.Service
	state        constants.SessionState
	keys         KeyMap
	help         help.Model

	prefs models.Preferences
	daily models.Affirmation

	journalModel   journallist.Model
	favoritesModel favorites.Model
	summary        analytics.Summary

	form      *huh.Form
	entryForm *EntryFormModel

	entryToDeleteID string
	formError       string
	quitting        bool
	width           int
	height          int
}

func NewModel(store storage.Provider, svc *affirmations.Service) Model {
	prefs, _ := store.GetPreferences()

	now := timeNow()
	if settings, err := store.GetSettings(); err == nil {
		if tzNow, err := utils.NowInTimezone(settings.Timezone); err == nil {
			now = tzNow
		}
	}

	// Ensure today's pick exists and is current
	if prefs.TodayAffirmationID == "" || !affirmations.DailyStillValid(prefs.LastRefresh, now) {
		result := svc.SelectDaily(prefs.ViewedIDs, prefs.SelectedCategories)
		engagement.SetDailyPick(&prefs, result.Affirmation.ID, result.ResetHistory, now)
		svc.MarkShown(result.Affirmation.ID, now)
		// Best effort: the TUI stays usable even if the save fails
		_ = store.SavePreferences(prefs)
	}
	daily, _ := svc.Get(prefs.TodayAffirmationID)

	entries, _ := store.GetAllJournalEntries(true)

	window := analytics.WindowMonth
	if settings, err := store.GetSettings(); err == nil {
		window = analytics.Window(settings.DefaultInsightsWindow)
	}

	m := Model{
		store:          store,
		affirmations:   svc,
		state:          constants.StateToday,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		prefs:          prefs,
		daily:          daily,
		journalModel:   journallist.New(entries, 0, 0),
		favoritesModel: favorites.New(svc.Pool(), prefs, 0, 0),
		summary:        analytics.Summarize(entries, window, now),
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateToday:
		keys = append(keys, m.keys.Refresh, m.keys.Favorite)
	case constants.StateFavorites:
		keys = append(keys, m.keys.Favorite)
	case constants.StateJournal:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateToday:
		actions = []key.Binding{m.keys.Refresh, m.keys.Favorite}
	case constants.StateFavorites:
		actions = []key.Binding{m.keys.Favorite}
	case constants.StateJournal:
		actions = []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Restore}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshJournal reloads entries and recomputes the insight summary.
func (m *Model) refreshJournal() {
	entries, err := m.store.GetAllJournalEntries(true)
	if err != nil {
		return
	}
	m.journalModel.SetEntries(entries)

	window := analytics.WindowMonth
	if settings, err := m.store.GetSettings(); err == nil {
		window = analytics.Window(settings.DefaultInsightsWindow)
	}
	m.summary = analytics.Summarize(entries, window, timeNow())
}

func newEntryForm(f *EntryFormModel) *huh.Form {
	moodOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, mood := range models.AllMoods() {
		moodOptions = append(moodOptions, huh.NewOption(mood.Icon()+" "+mood.DisplayName(), string(mood)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What's on your mind?").
				Value(&f.Content).
				Validate(func(s string) error {
					if len(s) == 0 {
						return errEmptyEntry
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Mood").
				Options(moodOptions...).
				Value(&f.Mood),
			huh.NewInput().
				Title("Grateful for (comma-separated)").
				Value(&f.Gratitude),
		),
	)
}
