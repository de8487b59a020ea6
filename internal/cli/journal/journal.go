package journal

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dailyglow/dailyglow/internal/cli"
	"github.com/dailyglow/dailyglow/internal/constants"
	"github.com/dailyglow/dailyglow/internal/models"
	"github.com/dailyglow/dailyglow/internal/utils"
)

type JournalCmd struct {
	Add     JournalAddCmd     `cmd:"" help:"Add a journal entry."`
	List    JournalListCmd    `cmd:"" help:"List journal entries."`
	Show    JournalShowCmd    `cmd:"" help:"Show a single entry."`
	Edit    JournalEditCmd    `cmd:"" help:"Replace the content of an entry."`
	Delete  JournalDeleteCmd  `cmd:"" help:"Delete an entry (soft delete)."`
	Restore JournalRestoreCmd `cmd:"" help:"Restore a deleted entry."`
}

type JournalAddCmd struct {
	Content   string `arg:"" help:"Entry text."`
	Date      string `short:"d" help:"Entry date in YYYY-MM-DD format (default: today)."`
	Mood      string `short:"m" help:"Mood at time of writing."`
	Tags      string `short:"t" help:"Comma-separated tags."`
	Gratitude string `short:"g" help:"Comma-separated gratitude items."`
	Daily     bool   `help:"Link the entry to today's affirmation."`
}

func (c *JournalAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Content) == "" {
		return fmt.Errorf("entry content must not be empty")
	}

	now := ctx.Now()
	day := utils.StartOfDay(now)
	if c.Date != "" {
		parsed, err := utils.ParseDay(c.Date, now.Location())
		if err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", c.Date)
		}
		day = parsed
	}

	entry := models.JournalEntry{
		ID:        uuid.New().String(),
		Date:      day,
		Content:   c.Content,
		CreatedAt: now,
	}

	if c.Mood != "" {
		mood, ok := models.ParseMood(c.Mood)
		if !ok {
			return fmt.Errorf("unknown mood %q", c.Mood)
		}
		entry.Mood = &mood
	}
	entry.Tags = splitList(c.Tags)
	entry.Gratitude = splitList(c.Gratitude)

	if c.Daily {
		prefs, err := ctx.Store.GetPreferences()
		if err != nil {
			return fmt.Errorf("failed to get preferences: %w", err)
		}
		entry.AffirmationID = prefs.TodayAffirmationID
	}

	if err := ctx.Store.AddJournalEntry(entry); err != nil {
		return err
	}

	fmt.Printf("Added entry for %s (%s)\n", utils.FormatDay(entry.Date), shortID(entry.ID))
	return nil
}

type JournalListCmd struct {
	Deleted bool   `help:"Include deleted entries."`
	Tag     string `help:"Only entries carrying this tag."`
	Limit   int    `short:"n" help:"Show at most N entries (0 = all)." default:"0"`
}

func (c *JournalListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetAllJournalEntries(c.Deleted)
	if err != nil {
		return err
	}

	if c.Tag != "" {
		entries = filterByTag(entries, c.Tag)
	}
	if c.Limit > 0 && len(entries) > c.Limit {
		// Entries come back oldest-first, keep the most recent N
		entries = entries[len(entries)-c.Limit:]
	}

	if len(entries) == 0 {
		fmt.Println("No journal entries found.")
		return nil
	}

	for _, e := range entries {
		status := ""
		if e.DeletedAt != nil {
			status = " [DELETED]"
		}
		mood := ""
		if e.Mood != nil {
			mood = " " + e.Mood.Icon()
		}
		fmt.Printf("%s  %s%s  %s%s\n", shortID(e.ID), utils.FormatDay(e.Date), mood, preview(e.Content), status)
	}
	return nil
}

type JournalShowCmd struct {
	ID string `arg:"" help:"Entry id (full or prefix)."`
}

func (c *JournalShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entry, err := resolveEntry(ctx, c.ID, true)
	if err != nil {
		return err
	}

	fmt.Printf("Date:    %s\n", utils.FormatDay(entry.Date))
	if entry.Mood != nil {
		fmt.Printf("Mood:    %s %s\n", entry.Mood.Icon(), entry.Mood.DisplayName())
	}
	if len(entry.Tags) > 0 {
		fmt.Printf("Tags:    %s\n", strings.Join(entry.Tags, ", "))
	}
	if entry.AffirmationID != "" {
		if a, ok := ctx.Affirmations.Get(entry.AffirmationID); ok {
			fmt.Printf("Daily:   %s\n", a.Text)
		}
	}
	if len(entry.Gratitude) > 0 {
		fmt.Println("Grateful for:")
		for _, item := range entry.Gratitude {
			fmt.Printf("  - %s\n", item)
		}
	}
	fmt.Printf("\n%s\n", entry.Content)
	fmt.Printf("\n(%d words, written %s)\n", entry.WordCount(), entry.CreatedAt.Format(constants.DateFormat+" "+constants.TimeFormat))
	return nil
}

type JournalEditCmd struct {
	ID      string `arg:"" help:"Entry id (full or prefix)."`
	Content string `arg:"" help:"Replacement text."`
	Mood    string `short:"m" help:"Replacement mood (empty keeps current)."`
}

func (c *JournalEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entry, err := resolveEntry(ctx, c.ID, false)
	if err != nil {
		return err
	}

	if strings.TrimSpace(c.Content) == "" {
		return fmt.Errorf("entry content must not be empty")
	}
	entry.Content = c.Content
	if c.Mood != "" {
		mood, ok := models.ParseMood(c.Mood)
		if !ok {
			return fmt.Errorf("unknown mood %q", c.Mood)
		}
		entry.Mood = &mood
	}

	if err := ctx.Store.UpdateJournalEntry(entry); err != nil {
		return err
	}
	fmt.Printf("Updated entry %s\n", shortID(entry.ID))
	return nil
}

type JournalDeleteCmd struct {
	ID string `arg:"" help:"Entry id (full or prefix)."`
}

func (c *JournalDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entry, err := resolveEntry(ctx, c.ID, false)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteJournalEntry(entry.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted entry %s (restore with 'dailyglow journal restore %s')\n", shortID(entry.ID), shortID(entry.ID))
	return nil
}

type JournalRestoreCmd struct {
	ID string `arg:"" help:"Entry id (full or prefix)."`
}

func (c *JournalRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entry, err := resolveEntry(ctx, c.ID, true)
	if err != nil {
		return err
	}
	if entry.DeletedAt == nil {
		return fmt.Errorf("entry %s is not deleted", shortID(entry.ID))
	}

	if err := ctx.Store.RestoreJournalEntry(entry.ID); err != nil {
		return err
	}
	fmt.Printf("Restored entry %s\n", shortID(entry.ID))
	return nil
}

// resolveEntry finds an entry by full id or unique prefix.
func resolveEntry(ctx *cli.Context, id string, includeDeleted bool) (models.JournalEntry, error) {
	entries, err := ctx.Store.GetAllJournalEntries(includeDeleted)
	if err != nil {
		return models.JournalEntry{}, err
	}

	var matches []models.JournalEntry
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
		if strings.HasPrefix(e.ID, id) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return models.JournalEntry{}, fmt.Errorf("journal entry not found: %s", id)
	case 1:
		return matches[0], nil
	default:
		return models.JournalEntry{}, fmt.Errorf("id prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func filterByTag(entries []models.JournalEntry, tag string) []models.JournalEntry {
	var out []models.JournalEntry
	for _, e := range entries {
		for _, t := range e.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func preview(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	if len(content) > 48 {
		return content[:48] + "…"
	}
	return content
}
