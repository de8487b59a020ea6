package journallist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dailyglow/dailyglow/internal/models"
	"github.com/dailyglow/dailyglow/internal/utils"
)

type AddEntryMsg struct{}

type DeleteEntryMsg struct {
	ID string
}

type RestoreEntryMsg struct {
	ID string
}

type Item struct {
	Entry     models.JournalEntry
	IsDeleted bool
}

func (i Item) Title() string {
	title := utils.FormatDay(i.Entry.Date)
	if i.Entry.Mood != nil {
		title += " " + i.Entry.Mood.Icon()
	}
	if i.IsDeleted {
		title = "[DELETED] " + title
	}
	return title
}

func (i Item) Description() string {
	if i.IsDeleted {
		return "can restore with 'r'"
	}
	content := strings.ReplaceAll(i.Entry.Content, "\n", " ")
	if len(content) > 60 {
		content = content[:60] + "…"
	}
	return content
}

func (i Item) FilterValue() string { return i.Entry.Content }

type KeyMap struct {
	Add     key.Binding
	Delete  key.Binding
	Restore key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add entry"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.JournalEntry, width, height int) Model {
	l := list.New(toItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Restore}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Restore}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetEntries(entries []models.JournalEntry) {
	m.list.SetItems(toItems(entries))
}

func toItems(entries []models.JournalEntry) []list.Item {
	// Newest first for browsing
	items := make([]list.Item, len(entries))
	for i := range entries {
		e := entries[len(entries)-1-i]
		items[i] = Item{Entry: e, IsDeleted: e.DeletedAt != nil}
	}
	return items
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddEntryMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if !i.IsDeleted {
					return m, func() tea.Msg { return DeleteEntryMsg{ID: i.Entry.ID} }
				}
			}
		case key.Matches(msg, m.keys.Restore):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.IsDeleted {
					return m, func() tea.Msg { return RestoreEntryMsg{ID: i.Entry.ID} }
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No journal entries yet.\n  Press 'a' to write one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
