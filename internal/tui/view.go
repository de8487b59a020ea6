package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dailyglow/dailyglow/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateToday:
		content = m.viewToday()
	case constants.StateFavorites:
		content = docStyle.Render(m.favoritesModel.View())
	case constants.StateJournal:
		content = m.viewJournal()
	case constants.StateInsights:
		content = m.viewInsights()
	case constants.StateAddEntry:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Today", "Affirmations", "Journal", "Insights"}
	states := []constants.SessionState{
		constants.StateToday,
		constants.StateFavorites,
		constants.StateJournal,
		constants.StateInsights,
	}
	for i, title := range tabTitles {
		if m.state == states[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder

	greeting := "Your affirmation for today"
	if m.prefs.UserName != "" {
		greeting = fmt.Sprintf("Good day, %s", m.prefs.UserName)
	}
	b.WriteString(mutedStyle.Render(greeting))
	b.WriteString("\n")

	text := fmt.Sprintf("%s %s", m.daily.Category.Icon(), m.daily.DisplayText(m.prefs.UserName))
	b.WriteString(affirmationStyle.Render(text))
	b.WriteString("\n")

	if m.prefs.IsFavorite(m.daily.ID) {
		b.WriteString("  ★ favorited\n")
	}
	if m.prefs.StreakCount > 0 {
		streak := fmt.Sprintf("%s %d-day streak · next milestone %d days", m.prefs.StreakEmoji(), m.prefs.StreakCount, m.prefs.NextMilestone())
		b.WriteString(streakStyle.Render("  " + streak))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d affirmations viewed in total", m.prefs.TotalViewed)))

	return docStyle.Render(b.String())
}

func (m Model) viewJournal() string {
	view := m.journalModel.View()
	if m.formError != "" {
		view = dangerStyle.Render(m.formError) + "\n" + view
	}
	return docStyle.Render(view)
}

func (m Model) viewInsights() string {
	var b strings.Builder
	s := m.summary

	fmt.Fprintf(&b, "Journal insights (%s)\n\n", s.Window)
	fmt.Fprintf(&b, "  Entries:        %d\n", s.TotalEntries)
	fmt.Fprintf(&b, "  Words:          %d (avg %.1f)\n", s.TotalWords, s.AverageWords)
	fmt.Fprintf(&b, "  Current streak: %d days\n", s.CurrentStreak)
	fmt.Fprintf(&b, "  Longest streak: %d days\n", s.LongestStreak)
	if s.HasDominantMood {
		fmt.Fprintf(&b, "  Dominant mood:  %s %s\n", s.DominantMood.Icon(), s.DominantMood.DisplayName())
	}
	if s.MostActiveWeekday != "" {
		fmt.Fprintf(&b, "  Most active:    %ss, usually in the %s\n", s.MostActiveWeekday, s.MostActiveTime)
	}

	if len(s.MoodTrend) > 0 {
		b.WriteString("\nMood trend:\n")
		for _, p := range s.MoodTrend {
			steps := int(p.Average * 2)
			if steps < 0 {
				steps = 0
			}
			if steps > 10 {
				steps = 10
			}
			fmt.Fprintf(&b, "  %s  %s %.1f %s\n", p.Day, strings.Repeat("█", steps)+strings.Repeat("░", 10-steps), p.Average, p.Dominant.Icon())
		}
	}

	if len(s.TopWords) > 0 {
		b.WriteString("\nMost used words:\n")
		limit := len(s.TopWords)
		if limit > 8 {
			limit = 8
		}
		for _, w := range s.TopWords[:limit] {
			fmt.Fprintf(&b, "  %-16s %d\n", w.Word, w.Count)
		}
	}

	if s.TotalEntries == 0 {
		b.WriteString("\n" + mutedStyle.Render("Write journal entries to see trends here."))
	}

	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete this journal entry?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
