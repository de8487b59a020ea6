package cli

import (
	"fmt"

	"github.com/dailyglow/dailyglow/internal/engagement"
	"github.com/dailyglow/dailyglow/internal/models"
)

type AffirmationCmd struct {
	List      AffirmationListCmd      `cmd:"" help:"List affirmations, optionally by category."`
	Search    AffirmationSearchCmd    `cmd:"" help:"Search affirmations by text."`
	Mood      AffirmationMoodCmd      `cmd:"" help:"Show affirmations suggested for a mood."`
	Recommend AffirmationRecommendCmd `cmd:"" help:"Show recommendations for this time of day."`
	Stats     AffirmationStatsCmd     `cmd:"" help:"Show engagement stats and achievements."`
}

type AffirmationListCmd struct {
	Category string `short:"c" help:"Filter by category (e.g. gratitude, peace)."`
}

func (c *AffirmationListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	pool := ctx.Affirmations.Pool()
	if c.Category != "" {
		cat, ok := models.ParseCategory(c.Category)
		if !ok {
			return fmt.Errorf("unknown category %q", c.Category)
		}
		pool = ctx.Affirmations.ForCategory(cat, 0)
	}

	if len(pool) == 0 {
		fmt.Println("No affirmations found.")
		return nil
	}

	for _, a := range pool {
		fmt.Println(FormatAffirmation(a, prefs.UserName, prefs.IsFavorite(a.ID)))
	}
	return nil
}

type AffirmationSearchCmd struct {
	Query string `arg:"" help:"Search text."`
}

func (c *AffirmationSearchCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	matches := ctx.Affirmations.Search(c.Query)
	if len(matches) == 0 {
		fmt.Printf("No affirmations match %q.\n", c.Query)
		return nil
	}

	for _, a := range matches {
		fmt.Println(FormatAffirmation(a, prefs.UserName, prefs.IsFavorite(a.ID)))
	}
	return nil
}

type AffirmationMoodCmd struct {
	Mood  string `arg:"" help:"Mood name (happy|grateful|calm|motivated|peaceful|confident|energized|focused)."`
	Count int    `short:"n" help:"Number of affirmations to show." default:"3"`
}

func (c *AffirmationMoodCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	mood, ok := models.ParseMood(c.Mood)
	if !ok {
		return fmt.Errorf("unknown mood %q", c.Mood)
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	// Remember the mood so the next recommendations can use it
	prefs.CurrentMood = &mood
	if err := ctx.Store.SavePreferences(prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	picks := ctx.Affirmations.ForMood(mood, c.Count)
	fmt.Printf("%s Feeling %s:\n\n", mood.Icon(), mood.DisplayName())
	for _, a := range picks {
		fmt.Println(FormatAffirmation(a, prefs.UserName, prefs.IsFavorite(a.ID)))
	}
	return nil
}

type AffirmationRecommendCmd struct {
	Count int `short:"n" help:"Number of recommendations." default:"5"`
}

func (c *AffirmationRecommendCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	picks := ctx.Affirmations.Recommended(ctx.Now(), prefs.FavoriteIDs, c.Count)
	if len(picks) == 0 {
		fmt.Println("No recommendations available.")
		return nil
	}

	fmt.Println("Recommended for you:")
	fmt.Println()
	for _, a := range picks {
		fmt.Println(FormatAffirmation(a, prefs.UserName, prefs.IsFavorite(a.ID)))
	}
	return nil
}

type AffirmationStatsCmd struct {
	Achievements bool `short:"a" help:"Include achievement progress."`
}

func (c *AffirmationStatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	entries, err := ctx.Store.GetAllJournalEntries(false)
	if err != nil {
		return fmt.Errorf("failed to get journal entries: %w", err)
	}

	stats := ctx.Affirmations.Statistics(prefs, ctx.Now())

	fmt.Println("Your Daily Glow:")
	fmt.Printf("  Streak:          %d days %s\n", stats.Streak, prefs.StreakEmoji())
	fmt.Printf("  Next milestone:  %d days\n", prefs.NextMilestone())
	fmt.Printf("  Total viewed:    %d (%.1f per day)\n", stats.TotalViewed, stats.AveragePerDay)
	fmt.Printf("  Favorites:       %d\n", stats.Favorites)
	fmt.Printf("  Categories seen: %d\n", stats.CategoriesExplored)
	if stats.HasMostViewed {
		fmt.Printf("  Most viewed:     %s %s\n", stats.MostViewed.Icon(), stats.MostViewed.DisplayName())
	}
	fmt.Printf("  Journal entries: %d\n", len(entries))

	if !c.Achievements {
		return nil
	}

	fmt.Println("\nAchievements:")
	for _, a := range engagement.Achievements(prefs, len(entries), ctx.Now()) {
		status := fmt.Sprintf("%3.0f%%", a.Percent()*100)
		if a.Unlocked {
			status = "🏆"
		}
		fmt.Printf("  %s %-24s %s (%d pts)\n", status, a.Title, a.Description, a.Points)
	}
	return nil
}
