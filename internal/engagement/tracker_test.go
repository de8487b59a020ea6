package engagement

import (
	"fmt"
	"testing"
	"time"

	"github.com/dailyglow/dailyglow/internal/models"
)

func day(d int, hour int) time.Time {
	return time.Date(2025, 6, d, hour, 0, 0, 0, time.UTC)
}

func TestUpdateStreakOnOpen(t *testing.T) {
	last := day(10, 9)
	tests := []struct {
		name       string
		streak     int
		lastOpened *time.Time
		now        time.Time
		wantStreak int
		wantChange bool
		wantParty  bool
	}{
		{"first open ever", 0, nil, day(10, 9), 1, true, false},
		{"same day repeat open", 4, &last, day(10, 22), 4, false, false},
		{"consecutive day", 4, &last, day(11, 7), 5, true, false},
		{"consecutive day hits milestone", 6, &last, day(11, 7), 7, true, true},
		{"two day gap resets", 12, &last, day(12, 9), 1, true, false},
		{"long gap resets", 300, &last, day(25, 9), 1, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateStreakOnOpen(tt.streak, tt.lastOpened, tt.now)
			if got.Streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", got.Streak, tt.wantStreak)
			}
			if got.Changed != tt.wantChange {
				t.Errorf("changed = %v, want %v", got.Changed, tt.wantChange)
			}
			if got.Celebrate != tt.wantParty {
				t.Errorf("celebrate = %v, want %v", got.Celebrate, tt.wantParty)
			}
		})
	}
}

func TestUpdateStreakSameDayKeepsLastOpened(t *testing.T) {
	morning := day(10, 8)
	got := UpdateStreakOnOpen(3, &morning, day(10, 20))
	if !got.LastOpened.Equal(morning) {
		t.Errorf("same-day open moved LastOpened to %v", got.LastOpened)
	}
}

func TestUpdateStreakAcrossMidnight(t *testing.T) {
	// 23:50 to 00:10 the next day is one calendar day apart.
	late := time.Date(2025, 6, 10, 23, 50, 0, 0, time.UTC)
	got := UpdateStreakOnOpen(2, &late, time.Date(2025, 6, 11, 0, 10, 0, 0, time.UTC))
	if got.Streak != 3 || !got.Changed {
		t.Errorf("got streak %d changed=%v, want 3 true", got.Streak, got.Changed)
	}
}

func TestUpdateStreakAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	// DST starts 2026-03-08, so that midnight-to-midnight span is 23 hours.
	last := time.Date(2026, 3, 8, 9, 0, 0, 0, loc)
	got := UpdateStreakOnOpen(3, &last, time.Date(2026, 3, 9, 9, 0, 0, 0, loc))
	if got.Streak != 4 || !got.Changed {
		t.Errorf("got streak %d changed=%v, want 4 true", got.Streak, got.Changed)
	}
}

func TestApplyOpen(t *testing.T) {
	prefs := models.DefaultPreferences()

	update := ApplyOpen(&prefs, day(10, 9))
	if prefs.StreakCount != 1 || prefs.LastOpened == nil {
		t.Fatalf("first open: streak=%d lastOpened=%v", prefs.StreakCount, prefs.LastOpened)
	}
	if prefs.FirstOpened == nil || !prefs.FirstOpened.Equal(day(10, 9)) {
		t.Fatalf("first open should record FirstOpened, got %v", prefs.FirstOpened)
	}
	if !update.Changed {
		t.Fatal("first open should report a change")
	}

	// Repeat open the same day leaves everything alone.
	before := *prefs.LastOpened
	update = ApplyOpen(&prefs, day(10, 18))
	if update.Changed || prefs.StreakCount != 1 || !prefs.LastOpened.Equal(before) {
		t.Fatalf("same-day open mutated state: streak=%d lastOpened=%v", prefs.StreakCount, prefs.LastOpened)
	}

	for d := 11; d <= 16; d++ {
		update = ApplyOpen(&prefs, day(d, 9))
	}
	if prefs.StreakCount != 7 {
		t.Fatalf("streak after a week = %d, want 7", prefs.StreakCount)
	}
	if !update.Celebrate {
		t.Error("seventh consecutive day should celebrate")
	}
}

func TestRecordViewCapsHistory(t *testing.T) {
	prefs := models.DefaultPreferences()
	for i := 0; i < 30; i++ {
		RecordView(&prefs, fmt.Sprintf("id-%d", i))
	}
	if prefs.TotalViewed != 30 {
		t.Errorf("TotalViewed = %d, want 30", prefs.TotalViewed)
	}
	if len(prefs.ViewedIDs) != 20 {
		t.Fatalf("history length = %d, want 20", len(prefs.ViewedIDs))
	}
	if prefs.ViewedIDs[0] != "id-10" || prefs.ViewedIDs[19] != "id-29" {
		t.Errorf("history window wrong: first=%q last=%q", prefs.ViewedIDs[0], prefs.ViewedIDs[19])
	}
}

func TestSetDailyPick(t *testing.T) {
	prefs := models.DefaultPreferences()
	prefs.ViewedIDs = []string{"old-1", "old-2"}

	now := day(10, 9)
	SetDailyPick(&prefs, "morning-01", false, now)
	if prefs.TodayAffirmationID != "morning-01" {
		t.Errorf("TodayAffirmationID = %q", prefs.TodayAffirmationID)
	}
	if prefs.LastRefresh == nil || !prefs.LastRefresh.Equal(now) {
		t.Errorf("LastRefresh = %v", prefs.LastRefresh)
	}
	if len(prefs.ViewedIDs) != 3 || prefs.ViewedIDs[2] != "morning-01" {
		t.Errorf("viewed history = %v", prefs.ViewedIDs)
	}

	// A reset clears the old history before recording the new pick.
	SetDailyPick(&prefs, "evening-01", true, day(11, 9))
	if len(prefs.ViewedIDs) != 1 || prefs.ViewedIDs[0] != "evening-01" {
		t.Errorf("viewed history after reset = %v", prefs.ViewedIDs)
	}
}

func TestToggleFavorite(t *testing.T) {
	prefs := models.DefaultPreferences()
	if !ToggleFavorite(&prefs, "morning-01") {
		t.Fatal("first toggle should favorite")
	}
	if !prefs.IsFavorite("morning-01") {
		t.Fatal("id missing from favorites")
	}
	if ToggleFavorite(&prefs, "morning-01") {
		t.Fatal("second toggle should unfavorite")
	}
	if prefs.IsFavorite("morning-01") {
		t.Fatal("id still favorited after second toggle")
	}
}

func TestAchievements(t *testing.T) {
	prefs := models.DefaultPreferences()
	prefs.StreakCount = 7
	prefs.TotalViewed = 150
	prefs.FavoriteIDs = []string{"a", "b", "c"}

	now := day(10, 9)
	got := Achievements(prefs, 1, now)

	byID := make(map[string]models.Achievement, len(got))
	for _, a := range got {
		byID[a.ID] = a
	}

	unlockedWant := map[string]bool{
		"streak-7":   true,
		"streak-30":  false,
		"views-10":   true,
		"views-100":  true,
		"views-1000": false,
		"favorites-5": false,
		"journal-1":  true,
		"journal-10": false,
	}
	for id, want := range unlockedWant {
		a, ok := byID[id]
		if !ok {
			t.Fatalf("missing achievement %q", id)
		}
		if a.Unlocked != want {
			t.Errorf("%s unlocked = %v, want %v", id, a.Unlocked, want)
		}
		if want && (a.UnlockedAt == nil || !a.UnlockedAt.Equal(now)) {
			t.Errorf("%s UnlockedAt = %v", id, a.UnlockedAt)
		}
	}

	if p := byID["favorites-5"].Percent(); p != 0.6 {
		t.Errorf("favorites-5 percent = %v, want 0.6", p)
	}
}
