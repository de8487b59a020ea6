// Package analytics aggregates journal entries into insight views: mood
// trends, writing frequency, word usage, and journaling streaks. All
// functions are pure over an entry slice; soft-deleted entries are ignored
// throughout.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/dailyglow/dailyglow/internal/constants"
	"github.com/dailyglow/dailyglow/internal/models"
	"github.com/dailyglow/dailyglow/internal/utils"
)

// Window bounds an insight query to the most recent N days. WindowAll
// disables the bound.
type Window int

const (
	WindowWeek    Window = 7
	WindowMonth   Window = 30
	WindowQuarter Window = 90
	WindowYear    Window = 365
	WindowAll     Window = 0
)

// ParseWindow maps the CLI flag spellings to a window.
func ParseWindow(s string) (Window, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "7", "7d":
		return WindowWeek, true
	case "month", "30", "30d":
		return WindowMonth, true
	case "quarter", "90", "90d":
		return WindowQuarter, true
	case "year", "365", "365d":
		return WindowYear, true
	case "all", "":
		return WindowAll, true
	default:
		return WindowAll, false
	}
}

func (w Window) String() string {
	switch w {
	case WindowWeek:
		return "week"
	case WindowMonth:
		return "month"
	case WindowQuarter:
		return "quarter"
	case WindowYear:
		return "year"
	default:
		return "all"
	}
}

// FilterByWindow keeps live entries whose date falls within the last
// w days of now (inclusive of today), sorted ascending by date. WindowAll
// keeps every live entry.
func FilterByWindow(entries []models.JournalEntry, w Window, now time.Time) []models.JournalEntry {
	var cutoff time.Time
	if w > 0 {
		cutoff = utils.StartOfDay(now).AddDate(0, 0, -int(w)+1)
	}
	var kept []models.JournalEntry
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		if w > 0 && utils.StartOfDay(e.Date).Before(cutoff) {
			continue
		}
		kept = append(kept, e)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Date.Before(kept[j].Date) })
	return kept
}

// MoodValue maps a mood onto a 1-to-5 wellbeing scale for trend charting.
// Higher is more energized; unknown moods score zero and are skipped by
// the trend aggregation.
func MoodValue(m models.Mood) float64 {
	switch m {
	case models.MoodEnergized:
		return 5
	case models.MoodMotivated, models.MoodHappy:
		return 4.5
	case models.MoodGrateful, models.MoodConfident:
		return 4
	case models.MoodCalm:
		return 3.5
	case models.MoodFocused:
		return 3
	case models.MoodPeaceful:
		return 2.5
	default:
		return 0
	}
}

// MoodPoint is one day on the mood trend chart.
type MoodPoint struct {
	Day      string      `json:"day"`
	Average  float64     `json:"average"`
	Dominant models.Mood `json:"dominant"`
	Count    int         `json:"count"`
}

// MoodTrend averages the mood value of entries per day and finds each day's
// most frequent mood, oldest day first. Per-day ties break toward the mood
// seen first in entry order. Days without any mood-tagged entry are absent
// from the series.
func MoodTrend(entries []models.JournalEntry) []MoodPoint {
	type dayMoods struct {
		sum      float64
		count    int
		perMood  map[models.Mood]int
		dominant models.Mood
		best     int
	}
	days := make(map[string]*dayMoods)
	for _, e := range entries {
		if e.DeletedAt != nil || e.Mood == nil {
			continue
		}
		v := MoodValue(*e.Mood)
		if v == 0 {
			continue
		}
		key := utils.FormatDay(e.Date)
		d := days[key]
		if d == nil {
			d = &dayMoods{perMood: make(map[models.Mood]int)}
			days[key] = d
		}
		d.sum += v
		d.count++
		d.perMood[*e.Mood]++
		if d.perMood[*e.Mood] > d.best {
			d.dominant = *e.Mood
			d.best = d.perMood[*e.Mood]
		}
	}

	points := make([]MoodPoint, 0, len(days))
	for key, d := range days {
		points = append(points, MoodPoint{
			Day:      key,
			Average:  d.sum / float64(d.count),
			Dominant: d.dominant,
			Count:    d.count,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Day < points[j].Day })
	return points
}

// DominantMood returns the most frequent mood across live entries. Ties
// break toward the mood first reached, scanning entries in order. The
// second return is false when no entry carries a mood.
func DominantMood(entries []models.JournalEntry) (models.Mood, bool) {
	counts := make(map[models.Mood]int)
	var best models.Mood
	bestCount := 0
	for _, e := range entries {
		if e.DeletedAt != nil || e.Mood == nil {
			continue
		}
		counts[*e.Mood]++
		if counts[*e.Mood] > bestCount {
			best = *e.Mood
			bestCount = counts[*e.Mood]
		}
	}
	return best, bestCount > 0
}

// DayCount is one day of a frequency series.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// FrequencySeries counts entries per day, zero-filled for every day from
// the earliest entry through today so gaps render as explicit zeroes.
// Empty input yields an empty series.
func FrequencySeries(entries []models.JournalEntry, now time.Time) []DayCount {
	counts := make(map[string]int)
	var first time.Time
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		day := utils.StartOfDay(e.Date.In(now.Location()))
		counts[utils.FormatDay(day)]++
		if first.IsZero() || day.Before(first) {
			first = day
		}
	}
	if first.IsZero() {
		return nil
	}

	var series []DayCount
	last := utils.StartOfDay(now)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := utils.FormatDay(day)
		series = append(series, DayCount{Day: key, Count: counts[key]})
	}
	return series
}

// GratitudeSeries emits one point per live entry carrying its gratitude
// item count, oldest first. Entries are not grouped by day, so several
// points may share a date and zero counts stay visible.
func GratitudeSeries(entries []models.JournalEntry) []DayCount {
	var series []DayCount
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		series = append(series, DayCount{Day: utils.FormatDay(e.Date), Count: len(e.Gratitude)})
	}
	sort.SliceStable(series, func(i, j int) bool { return series[i].Day < series[j].Day })
	return series
}

// LongestStreak returns the longest run of consecutive days that each have
// at least one live entry. Multiple entries on a day count once.
func LongestStreak(entries []models.JournalEntry) int {
	daySet := make(map[string]time.Time)
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		day := utils.StartOfDay(e.Date)
		daySet[utils.FormatDay(day)] = day
	}
	if len(daySet) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(daySet))
	for _, d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if utils.DaysBetween(days[i-1], days[i]) == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// CurrentStreak returns the run of consecutive journaled days ending today
// or yesterday. A day without an entry before that breaks it.
func CurrentStreak(entries []models.JournalEntry, now time.Time) int {
	daySet := make(map[string]struct{})
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		daySet[utils.FormatDay(e.Date)] = struct{}{}
	}

	day := utils.StartOfDay(now)
	if _, ok := daySet[utils.FormatDay(day)]; !ok {
		// Today has no entry yet; a streak through yesterday still counts.
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := daySet[utils.FormatDay(day)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// WordCount is one entry in the top-words list.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordFrequency tallies words across entry contents: lowercased,
// whitespace-split, keeping only words longer than four characters. The
// top twenty are returned, most frequent first, ties alphabetical.
func WordFrequency(entries []models.JournalEntry) []WordCount {
	counts := make(map[string]int)
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		for _, word := range strings.Fields(strings.ToLower(e.Content)) {
			if len(word) > constants.WordMinLength {
				counts[word]++
			}
		}
	}

	words := make([]WordCount, 0, len(counts))
	for w, n := range counts {
		words = append(words, WordCount{Word: w, Count: n})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if len(words) > constants.WordTopN {
		words = words[:constants.WordTopN]
	}
	return words
}

// Summary is the headline insights view.
type Summary struct {
	Window            Window      `json:"window"`
	TotalEntries      int         `json:"total_entries"`
	TotalWords        int         `json:"total_words"`
	AverageWords      float64     `json:"average_words"`
	EntriesPerWeek    float64     `json:"entries_per_week"`
	CurrentStreak     int         `json:"current_streak"`
	LongestStreak     int         `json:"longest_streak"`
	DominantMood      models.Mood `json:"dominant_mood,omitempty"`
	HasDominantMood   bool        `json:"has_dominant_mood"`
	MostActiveWeekday string      `json:"most_active_weekday,omitempty"`
	MostActiveTime    string      `json:"most_active_time,omitempty"`
	UniqueTags        int         `json:"unique_tags"`
	GratitudeItems    int         `json:"gratitude_items"`
	MoodTrend         []MoodPoint `json:"mood_trend,omitempty"`
	Frequency         []DayCount  `json:"frequency,omitempty"`
	Gratitude         []DayCount  `json:"gratitude,omitempty"`
	TopWords          []WordCount `json:"top_words,omitempty"`
}

// MostActiveWeekday returns the weekday with the most entries, or "" for an
// empty input. Ties go to the earlier weekday, Sunday first.
func MostActiveWeekday(entries []models.JournalEntry) string {
	var counts [7]int
	any := false
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		counts[int(e.Date.Weekday())]++
		any = true
	}
	if !any {
		return ""
	}
	best := 0
	for d := 1; d < 7; d++ {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return time.Weekday(best).String()
}

// MostActiveTime buckets entry creation times into morning, afternoon,
// evening, and night, and returns the busiest bucket, or "" for an empty
// input. Ties go to the earlier bucket.
func MostActiveTime(entries []models.JournalEntry) string {
	labels := []string{"morning", "afternoon", "evening", "night"}
	var counts [4]int
	any := false
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		h := e.CreatedAt.Hour()
		switch {
		case h >= 5 && h < 12:
			counts[0]++
		case h >= 12 && h < 17:
			counts[1]++
		case h >= 17 && h < 22:
			counts[2]++
		default:
			counts[3]++
		}
		any = true
	}
	if !any {
		return ""
	}
	best := 0
	for i := 1; i < 4; i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return labels[best]
}

// Summarize computes the full insight summary over the given window.
// Streaks are computed over all live entries regardless of the window so a
// narrow view does not truncate them.
func Summarize(entries []models.JournalEntry, w Window, now time.Time) Summary {
	windowed := FilterByWindow(entries, w, now)

	totalWords := 0
	for _, e := range windowed {
		totalWords += e.WordCount()
	}
	avg := 0.0
	if len(windowed) > 0 {
		avg = float64(totalWords) / float64(len(windowed))
	}

	tags := make(map[string]struct{})
	gratitudeItems := 0
	for _, e := range windowed {
		for _, tag := range e.Tags {
			tags[strings.ToLower(tag)] = struct{}{}
		}
		gratitudeItems += len(e.Gratitude)
	}

	perWeek := 0.0
	if len(windowed) > 0 {
		spanDays := utils.DaysBetween(windowed[0].Date, now) + 1
		if spanDays < 1 {
			spanDays = 1
		}
		perWeek = float64(len(windowed)) / (float64(spanDays) / 7)
	}

	dominant, hasDominant := DominantMood(windowed)
	return Summary{
		Window:            w,
		TotalEntries:      len(windowed),
		TotalWords:        totalWords,
		AverageWords:      avg,
		EntriesPerWeek:    perWeek,
		CurrentStreak:     CurrentStreak(entries, now),
		LongestStreak:     LongestStreak(entries),
		DominantMood:      dominant,
		HasDominantMood:   hasDominant,
		MostActiveWeekday: MostActiveWeekday(windowed),
		MostActiveTime:    MostActiveTime(windowed),
		UniqueTags:        len(tags),
		GratitudeItems:    gratitudeItems,
		MoodTrend:         MoodTrend(windowed),
		Frequency:         FrequencySeries(windowed, now),
		Gratitude:         GratitudeSeries(windowed),
		TopWords:          WordFrequency(windowed),
	}
}
