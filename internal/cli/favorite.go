package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dailyglow/dailyglow/internal/engagement"
)

type FavoriteCmd struct {
	Toggle FavoriteToggleCmd `cmd:"" help:"Toggle an affirmation as favorite."`
	List   FavoriteListCmd   `cmd:"" help:"List favorite affirmations."`
	Export FavoriteExportCmd `cmd:"" help:"Export favorites as JSON."`
}

type FavoriteToggleCmd struct {
	ID string `arg:"" help:"Affirmation id (e.g. gratitude-01)."`
}

func (c *FavoriteToggleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	a, ok := ctx.Affirmations.Get(c.ID)
	if !ok {
		return fmt.Errorf("affirmation %q not found", c.ID)
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	nowFavorite := engagement.ToggleFavorite(&prefs, c.ID)
	if err := ctx.Store.SavePreferences(prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	if nowFavorite {
		fmt.Printf("★ Added to favorites: %s\n", a.DisplayText(prefs.UserName))
	} else {
		fmt.Printf("Removed from favorites: %s\n", a.DisplayText(prefs.UserName))
	}
	return nil
}

type FavoriteListCmd struct{}

func (c *FavoriteListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	if len(prefs.FavoriteIDs) == 0 {
		fmt.Println("No favorites yet. Use 'dailyglow favorite toggle <id>' to add one.")
		return nil
	}

	for _, id := range prefs.FavoriteIDs {
		a, ok := ctx.Affirmations.Get(id)
		if !ok {
			// Stale id from an older pool, skip it
			continue
		}
		fmt.Println(FormatAffirmation(a, prefs.UserName, true))
	}
	return nil
}

type FavoriteExportCmd struct {
	Output string `short:"o" help:"Write to a file instead of stdout."`
}

func (c *FavoriteExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	type exported struct {
		ID       string `json:"id"`
		Text     string `json:"text"`
		Category string `json:"category"`
	}
	var out []exported
	for _, id := range prefs.FavoriteIDs {
		a, ok := ctx.Affirmations.Get(id)
		if !ok {
			continue
		}
		out = append(out, exported{ID: a.ID, Text: a.Text, Category: string(a.Category)})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}

	if c.Output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(c.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}
	fmt.Printf("Exported %d favorites to %s\n", len(out), c.Output)
	return nil
}
