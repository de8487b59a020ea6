package insights

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dailyglow/dailyglow/internal/analytics"
	"github.com/dailyglow/dailyglow/internal/cli"
)

type InsightsCmd struct {
	Window string `short:"w" help:"Time window (week|month|quarter|year|all, default from settings)."`
	Words  bool   `help:"Include the top-words breakdown."`
	JSON   bool   `help:"Emit the summary as JSON."`
}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	window, err := c.resolveWindow(ctx)
	if err != nil {
		return err
	}

	entries, err := ctx.Store.GetAllJournalEntries(false)
	if err != nil {
		return err
	}

	summary := analytics.Summarize(entries, window, ctx.Now())

	if c.JSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Journal insights (%s):\n", summary.Window)
	fmt.Printf("  Entries:        %d\n", summary.TotalEntries)
	fmt.Printf("  Words:          %d (avg %.1f per entry)\n", summary.TotalWords, summary.AverageWords)
	fmt.Printf("  Pace:           %.1f entries per week\n", summary.EntriesPerWeek)
	fmt.Printf("  Current streak: %d days\n", summary.CurrentStreak)
	fmt.Printf("  Longest streak: %d days\n", summary.LongestStreak)
	if summary.HasDominantMood {
		fmt.Printf("  Dominant mood:  %s %s\n", summary.DominantMood.Icon(), summary.DominantMood.DisplayName())
	}
	if summary.MostActiveWeekday != "" {
		fmt.Printf("  Most active:    %ss, usually in the %s\n", summary.MostActiveWeekday, summary.MostActiveTime)
	}
	if summary.UniqueTags > 0 {
		fmt.Printf("  Tags used:      %d\n", summary.UniqueTags)
	}
	if summary.GratitudeItems > 0 {
		fmt.Printf("  Gratitude:      %d items recorded\n", summary.GratitudeItems)
	}

	if len(summary.MoodTrend) > 0 {
		fmt.Println("\nMood trend:")
		for _, p := range summary.MoodTrend {
			fmt.Printf("  %s  %s %.1f %s\n", p.Day, bar(p.Average), p.Average, p.Dominant.Icon())
		}
	}

	if len(summary.Frequency) > 0 {
		fmt.Println("\nWriting frequency:")
		for _, d := range summary.Frequency {
			fmt.Printf("  %s  %s\n", d.Day, strings.Repeat("▪", d.Count))
		}
	}

	if len(summary.Gratitude) > 0 {
		fmt.Println("\nGratitude per entry:")
		for _, d := range summary.Gratitude {
			fmt.Printf("  %s  %d\n", d.Day, d.Count)
		}
	}

	if c.Words && len(summary.TopWords) > 0 {
		fmt.Println("\nMost used words:")
		for _, w := range summary.TopWords {
			fmt.Printf("  %-16s %d\n", w.Word, w.Count)
		}
	}
	return nil
}

func (c *InsightsCmd) resolveWindow(ctx *cli.Context) (analytics.Window, error) {
	if c.Window == "" {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return analytics.WindowAll, fmt.Errorf("failed to get settings: %w", err)
		}
		return analytics.Window(settings.DefaultInsightsWindow), nil
	}
	window, ok := analytics.ParseWindow(c.Window)
	if !ok {
		return analytics.WindowAll, fmt.Errorf("unknown window %q (valid: week, month, quarter, year, all)", c.Window)
	}
	return window, nil
}

// bar renders a 1-to-5 mood average on a ten-step scale.
func bar(avg float64) string {
	steps := int(avg * 2)
	if steps < 0 {
		steps = 0
	}
	if steps > 10 {
		steps = 10
	}
	return strings.Repeat("█", steps) + strings.Repeat("░", 10-steps)
}
