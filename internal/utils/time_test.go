package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	d := func(day, hour int) time.Time {
		return time.Date(2025, 6, day, hour, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", d(10, 8), d(10, 23), 0},
		{"across midnight", d(10, 23), d(11, 1), 1},
		{"week apart", d(10, 9), d(17, 9), 7},
		{"reversed", d(12, 9), d(10, 9), -2},
	}
	for _, tt := range tests {
		if got := DaysBetween(tt.from, tt.to); got != tt.want {
			t.Errorf("%s: DaysBetween = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDaysBetweenDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	// Spring forward: 2026-03-08 has only 23 hours.
	from := time.Date(2026, 3, 8, 9, 0, 0, 0, loc)
	if got := DaysBetween(from, time.Date(2026, 3, 9, 9, 0, 0, 0, loc)); got != 1 {
		t.Errorf("spring forward: DaysBetween = %d, want 1", got)
	}

	// Fall back: 2026-11-01 has 25 hours.
	from = time.Date(2026, 11, 1, 9, 0, 0, 0, loc)
	if got := DaysBetween(from, time.Date(2026, 11, 2, 9, 0, 0, 0, loc)); got != 1 {
		t.Errorf("fall back: DaysBetween = %d, want 1", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 6, 10, 0, 5, 0, 0, time.UTC)
	b := time.Date(2025, 6, 10, 23, 55, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("timestamps on the same date should match")
	}
	if SameDay(a, b.Add(time.Hour)) {
		t.Error("timestamps a day apart should not match")
	}
}
