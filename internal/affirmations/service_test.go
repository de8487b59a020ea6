package affirmations

import (
	"testing"
	"time"

	"github.com/dailyglow/dailyglow/internal/models"
)

func testPool(t *testing.T, n int, category models.Category) []models.Affirmation {
	t.Helper()
	pool := make([]models.Affirmation, n)
	for i := range pool {
		pool[i] = models.Affirmation{
			ID:       string(rune('a' + i)),
			Text:     "affirmation " + string(rune('a'+i)),
			Category: category,
			Mood:     models.MoodCalm,
		}
	}
	return pool
}

func TestNewServiceEmptyPool(t *testing.T) {
	if _, err := NewService(nil); err != ErrEmptyPool {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestNewServiceDuplicateID(t *testing.T) {
	pool := testPool(t, 2, models.CategoryMotivation)
	pool[1].ID = pool[0].ID
	if _, err := NewService(pool); err == nil {
		t.Fatal("expected error for duplicate id")
	}
}

func TestSelectDailyExcludesRecent(t *testing.T) {
	svc, err := NewService(testPool(t, 10, models.CategoryMotivation))
	if err != nil {
		t.Fatal(err)
	}

	// Window is min(7, 10/2) = 5, so the last five viewed ids are excluded.
	viewed := []string{"a", "b", "c", "d", "e", "f"}
	excluded := map[string]bool{"b": true, "c": true, "d": true, "e": true, "f": true}
	for i := 0; i < 200; i++ {
		res := svc.SelectDaily(viewed, nil)
		if excluded[res.Affirmation.ID] {
			t.Fatalf("picked recently viewed %q", res.Affirmation.ID)
		}
		if res.ResetHistory {
			t.Fatal("unexpected history reset with candidates available")
		}
	}
}

func TestSelectDailyResetsWhenExhausted(t *testing.T) {
	svc, err := NewService(testPool(t, 2, models.CategoryMotivation))
	if err != nil {
		t.Fatal(err)
	}

	// Window is min(7, 2/2) = 1. Viewing "a" then "b" leaves "b" excluded,
	// so only "a" is ever picked and history is never reset.
	res := svc.SelectDaily([]string{"a", "b"}, nil)
	if res.Affirmation.ID != "a" {
		t.Fatalf("expected a, got %q", res.Affirmation.ID)
	}
	if res.ResetHistory {
		t.Fatal("unexpected reset")
	}
}

func TestSelectDailyResetOnSinglePool(t *testing.T) {
	svc, err := NewService(testPool(t, 1, models.CategoryMotivation))
	if err != nil {
		t.Fatal(err)
	}
	// Window is min(7, 0) = 0: nothing excluded, never a reset, and the
	// single entry always wins.
	res := svc.SelectDaily([]string{"a"}, nil)
	if res.Affirmation.ID != "a" || res.ResetHistory {
		t.Fatalf("got %q reset=%v", res.Affirmation.ID, res.ResetHistory)
	}
}

func TestSelectDailyCategoryPreference(t *testing.T) {
	pool := testPool(t, 4, models.CategoryMotivation)
	pool[2].Category = models.CategoryGratitude
	pool[3].Category = models.CategoryGratitude
	svc, err := NewService(pool)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		res := svc.SelectDaily(nil, []models.Category{models.CategoryGratitude})
		if res.Affirmation.Category != models.CategoryGratitude {
			t.Fatalf("picked outside preferred categories: %q", res.Affirmation.Category)
		}
	}
}

func TestSelectDailyPreferenceFallsBackWhenUnmatched(t *testing.T) {
	svc, err := NewService(testPool(t, 3, models.CategoryMotivation))
	if err != nil {
		t.Fatal(err)
	}
	res := svc.SelectDaily(nil, []models.Category{models.CategorySpiritual})
	if res.Affirmation.ID == "" {
		t.Fatal("expected a pick despite unmatched preference")
	}
}

func TestDailyStillValid(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	sameDay := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	yesterday := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)

	if DailyStillValid(nil, now) {
		t.Error("nil refresh should not be valid")
	}
	if !DailyStillValid(&sameDay, now) {
		t.Error("same-day refresh should be valid")
	}
	if DailyStillValid(&yesterday, now) {
		t.Error("previous-day refresh should not be valid")
	}
}

func TestSearch(t *testing.T) {
	pool := testPool(t, 3, models.CategoryMotivation)
	pool[0].Text = "I am filled with gratitude today"
	pool[1].Text = "Success flows to me"
	svc, err := NewService(pool)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"gratitude", 1},
		{"SUCCESS", 1},
		{"motivation", 3}, // category display name
		{"", 0},
		{"   ", 0},
		{"nonexistent", 0},
	}
	for _, tt := range tests {
		if got := len(svc.Search(tt.query)); got != tt.want {
			t.Errorf("Search(%q) = %d results, want %d", tt.query, got, tt.want)
		}
	}
}

func TestForMood(t *testing.T) {
	pool := testPool(t, 4, models.CategoryPeace)
	pool[3].Category = models.CategoryMotivation
	svc, err := NewService(pool)
	if err != nil {
		t.Fatal(err)
	}

	// Calm suggests peace, gratitude, health.
	got := svc.ForMood(models.MoodCalm, 0)
	if len(got) != 3 {
		t.Fatalf("ForMood(calm) = %d results, want 3", len(got))
	}
	for _, a := range got {
		if a.Category != models.CategoryPeace {
			t.Errorf("unexpected category %q", a.Category)
		}
	}

	if got := svc.ForMood(models.MoodCalm, 2); len(got) != 2 {
		t.Errorf("limit ignored: got %d", len(got))
	}
}

func TestMoodForHour(t *testing.T) {
	tests := []struct {
		hour int
		want models.Mood
	}{
		{6, models.MoodEnergized},
		{11, models.MoodMotivated},
		{15, models.MoodFocused},
		{19, models.MoodCalm},
		{23, models.MoodPeaceful},
		{2, models.MoodPeaceful},
	}
	for _, tt := range tests {
		if got := MoodForHour(tt.hour); got != tt.want {
			t.Errorf("MoodForHour(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestRecommendedDeduplicatesAndLimits(t *testing.T) {
	svc, err := NewService(models.SeedPool())
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	recs := svc.Recommended(now, []string{"gratitude-01", "peace-01"}, 5)
	if len(recs) == 0 || len(recs) > 5 {
		t.Fatalf("got %d recommendations", len(recs))
	}
	seen := make(map[string]bool)
	for _, a := range recs {
		if seen[a.ID] {
			t.Fatalf("duplicate recommendation %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestStatistics(t *testing.T) {
	pool := testPool(t, 4, models.CategoryMotivation)
	pool[3].Category = models.CategoryPeace
	svc, err := NewService(pool)
	if err != nil {
		t.Fatal(err)
	}

	first := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	prefs := models.Preferences{
		TotalViewed: 10,
		StreakCount: 3,
		FirstOpened: &first,
		FavoriteIDs: []string{"a", "d"},
		ViewedIDs:   []string{"a", "b", "d", "missing"},
	}

	stats := svc.Statistics(prefs, now)
	if stats.TotalViewed != 10 || stats.Favorites != 2 || stats.Streak != 3 {
		t.Fatalf("unexpected counters: %+v", stats)
	}
	if stats.CategoriesExplored != 2 {
		t.Fatalf("expected 2 categories explored, got %d", stats.CategoriesExplored)
	}
	if !stats.HasMostViewed || stats.MostViewed != models.CategoryMotivation {
		t.Fatalf("expected motivation as most viewed, got %+v", stats)
	}
	// 10 views over 5 active days
	if stats.AveragePerDay != 2.0 {
		t.Fatalf("expected 2.0 per day, got %v", stats.AveragePerDay)
	}
}

func TestStatisticsBeforeFirstOpen(t *testing.T) {
	svc, err := NewService(testPool(t, 2, models.CategoryMotivation))
	if err != nil {
		t.Fatal(err)
	}
	stats := svc.Statistics(models.Preferences{}, time.Now())
	if stats.AveragePerDay != 0 || stats.HasMostViewed {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
