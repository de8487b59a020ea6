package favorites

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dailyglow/dailyglow/internal/models"
)

type ToggleFavoriteMsg struct {
	ID string
}

type Item struct {
	Affirmation models.Affirmation
	UserName    string
	IsFavorite  bool
}

func (i Item) Title() string {
	marker := "○ "
	if i.IsFavorite {
		marker = "★ "
	}
	return marker + i.Affirmation.DisplayText(i.UserName)
}

func (i Item) Description() string {
	return i.Affirmation.Category.Icon() + " " + i.Affirmation.Category.DisplayName()
}

func (i Item) FilterValue() string { return i.Affirmation.Text }

type KeyMap struct {
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle favorite"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

// New builds the browsable affirmation list. Favorites sort to the top.
func New(pool []models.Affirmation, prefs models.Preferences, width, height int) Model {
	l := list.New(toItems(pool, prefs), list.NewDefaultDelegate(), width, height)
	l.Title = "Affirmations"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetPool(pool []models.Affirmation, prefs models.Preferences) {
	m.list.SetItems(toItems(pool, prefs))
}

func toItems(pool []models.Affirmation, prefs models.Preferences) []list.Item {
	var favs, rest []list.Item
	for _, a := range pool {
		item := Item{Affirmation: a, UserName: prefs.UserName, IsFavorite: prefs.IsFavorite(a.ID)}
		if item.IsFavorite {
			favs = append(favs, item)
		} else {
			rest = append(rest, item)
		}
	}
	return append(favs, rest...)
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
		if key.Matches(msg, m.keys.Toggle) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleFavoriteMsg{ID: i.Affirmation.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No affirmations loaded."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
