package models

import (
	"testing"
	"time"
)

func TestDisplayText(t *testing.T) {
	a := Affirmation{Text: "You are enough, [NAME]."}
	if got := a.DisplayText("Ada"); got != "You are enough, Ada." {
		t.Errorf("DisplayText = %q", got)
	}

	a.Personalized = true
	a.PersonalizedText = "[NAME], you shine today."
	if got := a.DisplayText("Ada"); got != "Ada, you shine today." {
		t.Errorf("personalized DisplayText = %q", got)
	}
}

func TestMarkShown(t *testing.T) {
	a := Affirmation{Text: "x"}
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	a.MarkShown(now)
	a.MarkShown(now.Add(time.Hour))
	if a.ShowCount != 2 {
		t.Errorf("ShowCount = %d, want 2", a.ShowCount)
	}
	if a.LastShown == nil || !a.LastShown.Equal(now.Add(time.Hour)) {
		t.Errorf("LastShown = %v", a.LastShown)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"gratitude", CategoryGratitude, true},
		{"Self Love", CategorySelfLove, true},
		{"serenity", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCategory(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseMood(t *testing.T) {
	if m, ok := ParseMood("grateful"); !ok || m != MoodGrateful {
		t.Errorf("ParseMood(grateful) = %v, %v", m, ok)
	}
	if _, ok := ParseMood("melancholy"); ok {
		t.Error("expected unknown mood to fail")
	}
}

func TestFavoriteSet(t *testing.T) {
	var p Preferences
	p.AddFavorite("a")
	p.AddFavorite("a")
	p.AddFavorite("b")
	if len(p.FavoriteIDs) != 2 {
		t.Fatalf("favorites = %v", p.FavoriteIDs)
	}
	p.RemoveFavorite("a")
	if p.IsFavorite("a") || !p.IsFavorite("b") {
		t.Fatalf("favorites after remove = %v", p.FavoriteIDs)
	}
}

func TestStreakMilestones(t *testing.T) {
	tests := []struct {
		streak    int
		emoji     string
		milestone int
	}{
		{0, "", 7},
		{3, "🔥", 7},
		{7, "🔥🔥", 30},
		{45, "🔥🔥🔥", 100},
		{200, "💎", 365},
		{400, "👑", 1000},
	}
	for _, tt := range tests {
		p := Preferences{StreakCount: tt.streak}
		if got := p.StreakEmoji(); got != tt.emoji {
			t.Errorf("StreakEmoji(%d) = %q, want %q", tt.streak, got, tt.emoji)
		}
		if got := p.NextMilestone(); got != tt.milestone {
			t.Errorf("NextMilestone(%d) = %d, want %d", tt.streak, got, tt.milestone)
		}
	}
}

func TestWordCount(t *testing.T) {
	e := JournalEntry{Content: "  two\twords\nand  more "}
	if got := e.WordCount(); got != 4 {
		t.Errorf("WordCount = %d, want 4", got)
	}
	if got := (JournalEntry{}).WordCount(); got != 0 {
		t.Errorf("empty WordCount = %d", got)
	}
}

func TestSeedPool(t *testing.T) {
	pool := SeedPool()
	if len(pool) == 0 {
		t.Fatal("seed pool is empty")
	}
	seen := make(map[string]bool, len(pool))
	for _, a := range pool {
		if a.ID == "" || a.Text == "" {
			t.Fatalf("incomplete seed entry %+v", a)
		}
		if seen[a.ID] {
			t.Fatalf("duplicate seed id %q", a.ID)
		}
		seen[a.ID] = true
		if _, ok := ParseCategory(string(a.Category)); !ok {
			t.Fatalf("seed %q has unknown category %q", a.ID, a.Category)
		}
	}
}
