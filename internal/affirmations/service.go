// Package affirmations selects and serves affirmations from the seed pool:
// the daily pick with repeat avoidance, mood and category recommendations,
// and search. All state of consequence (view history, favorites) belongs to
// the caller's preferences; the service itself only owns the read-only pool.
package affirmations

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dailyglow/dailyglow/internal/constants"
	"github.com/dailyglow/dailyglow/internal/models"
	"github.com/dailyglow/dailyglow/internal/utils"
)

// ErrEmptyPool is returned by NewService when constructed without any
// affirmations. An empty pool is the one fatal precondition; every other
// empty-candidate situation widens the pool instead of failing.
var ErrEmptyPool = errors.New("affirmation pool is empty")

type Service struct {
	pool []models.Affirmation
	byID map[string]int
}

// NewService builds a service over the given pool. The pool must be
// non-empty and ids must be unique.
func NewService(pool []models.Affirmation) (*Service, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	byID := make(map[string]int, len(pool))
	for i, a := range pool {
		if _, dup := byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate affirmation id %q", a.ID)
		}
		byID[a.ID] = i
	}
	return &Service{pool: pool, byID: byID}, nil
}

// Pool returns the full affirmation pool.
func (s *Service) Pool() []models.Affirmation {
	return s.pool
}

// Get looks up an affirmation by id.
func (s *Service) Get(id string) (models.Affirmation, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Affirmation{}, false
	}
	return s.pool[i], true
}

// MarkShown stamps the pooled record for the given id as displayed at now.
// Unknown ids are ignored.
func (s *Service) MarkShown(id string, now time.Time) {
	if i, ok := s.byID[id]; ok {
		s.pool[i].MarkShown(now)
	}
}

// DailyResult is the outcome of a daily selection. ResetHistory signals the
// caller to clear its viewed-id history: every candidate had been seen
// recently, so the exclusion window was abandoned for this pick.
type DailyResult struct {
	Affirmation  models.Affirmation
	ResetHistory bool
}

// SelectDaily picks the affirmation of the day. The pool is narrowed to the
// preferred categories when any are given, then entries in the most recent
// min(7, len(filtered)/2) viewed ids are excluded. The caller records the
// result as today's pick and appends it to the viewed history.
func (s *Service) SelectDaily(recentlyViewedIDs []string, preferred []models.Category) DailyResult {
	filtered := s.pool
	if len(preferred) > 0 {
		filtered = filterByCategories(s.pool, preferred)
		if len(filtered) == 0 {
			// No seed entries match the preference; fall back to everything.
			filtered = s.pool
		}
	}

	window := constants.RecentWindowMax
	if half := len(filtered) / 2; half < window {
		window = half
	}
	recent := make(map[string]struct{}, window)
	for _, id := range lastN(recentlyViewedIDs, window) {
		recent[id] = struct{}{}
	}

	candidates := make([]models.Affirmation, 0, len(filtered))
	for _, a := range filtered {
		if _, seen := recent[a.ID]; !seen {
			candidates = append(candidates, a)
		}
	}

	reset := false
	if len(candidates) == 0 {
		candidates = filtered
		reset = true
	}

	return DailyResult{
		Affirmation:  candidates[rand.IntN(len(candidates))],
		ResetHistory: reset,
	}
}

// DailyStillValid reports whether the last daily refresh happened on the
// same calendar day as now, i.e. whether today's pick is still fresh.
func DailyStillValid(lastRefresh *time.Time, now time.Time) bool {
	return lastRefresh != nil && utils.SameDay(now, *lastRefresh)
}

// ForMood returns a shuffled slice of affirmations whose category is
// suggested for the given mood, truncated to limit when limit > 0.
func (s *Service) ForMood(mood models.Mood, limit int) []models.Affirmation {
	matched := filterByCategories(s.pool, mood.SuggestedCategories())
	rand.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// ForCategory returns the affirmations in a category, truncated to limit
// when limit > 0.
func (s *Service) ForCategory(category models.Category, limit int) []models.Affirmation {
	matched := filterByCategories(s.pool, []models.Category{category})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// Search matches the query case-insensitively against affirmation text and
// category display names. An empty query yields no results.
func (s *Service) Search(query string) []models.Affirmation {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}
	var results []models.Affirmation
	for _, a := range s.pool {
		if strings.Contains(strings.ToLower(a.Text), query) ||
			strings.Contains(strings.ToLower(a.Category.DisplayName()), query) {
			results = append(results, a)
		}
	}
	return results
}

// MoodForHour maps a time of day to a default mood, used to seed
// recommendations when the user has not picked one.
func MoodForHour(hour int) models.Mood {
	switch {
	case hour >= 5 && hour < 10:
		return models.MoodEnergized
	case hour >= 10 && hour < 14:
		return models.MoodMotivated
	case hour >= 14 && hour < 18:
		return models.MoodFocused
	case hour >= 18 && hour < 22:
		return models.MoodCalm
	default:
		return models.MoodPeaceful
	}
}

// Recommended builds a short recommendation list: a few entries for the
// time-of-day mood plus one from each of the user's top favorite
// categories, de-duplicated and truncated to limit.
func (s *Service) Recommended(now time.Time, favoriteIDs []string, limit int) []models.Affirmation {
	if limit <= 0 {
		limit = 5
	}

	var recs []models.Affirmation
	seen := make(map[string]struct{})
	add := func(items ...models.Affirmation) {
		for _, a := range items {
			if _, dup := seen[a.ID]; dup {
				continue
			}
			seen[a.ID] = struct{}{}
			recs = append(recs, a)
		}
	}

	add(s.ForMood(MoodForHour(now.Hour()), 3)...)

	favCategories := make([]models.Category, 0, 2)
	favSeen := make(map[models.Category]struct{})
	for _, id := range favoriteIDs {
		a, ok := s.Get(id)
		if !ok {
			continue
		}
		if _, dup := favSeen[a.Category]; dup {
			continue
		}
		favSeen[a.Category] = struct{}{}
		favCategories = append(favCategories, a.Category)
		if len(favCategories) == 2 {
			break
		}
	}
	for _, c := range favCategories {
		if items := s.ForCategory(c, 1); len(items) > 0 {
			add(items[0])
		}
	}

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// Stats summarizes engagement with the pool. MostViewed is only meaningful
// when HasMostViewed is set; ties go to the category seen first in the
// viewed history.
type Stats struct {
	TotalViewed        int
	Favorites          int
	Streak             int
	CategoriesExplored int
	MostViewed         models.Category
	HasMostViewed      bool
	AveragePerDay      float64
}

// Statistics derives engagement stats from the preferences. Ids in the
// viewed history that no longer resolve against the pool are skipped.
// AveragePerDay is zero until the first recorded open.
func (s *Service) Statistics(prefs models.Preferences, now time.Time) Stats {
	stats := Stats{
		TotalViewed: prefs.TotalViewed,
		Favorites:   len(prefs.FavoriteIDs),
		Streak:      prefs.StreakCount,
	}

	counts := make(map[models.Category]int)
	var order []models.Category
	for _, id := range prefs.ViewedIDs {
		a, ok := s.Get(id)
		if !ok {
			continue
		}
		if counts[a.Category] == 0 {
			order = append(order, a.Category)
		}
		counts[a.Category]++
	}
	stats.CategoriesExplored = len(counts)
	for _, c := range order {
		if !stats.HasMostViewed || counts[c] > counts[stats.MostViewed] {
			stats.MostViewed = c
			stats.HasMostViewed = true
		}
	}

	if prefs.FirstOpened != nil {
		days := utils.DaysBetween(*prefs.FirstOpened, now) + 1
		if days < 1 {
			days = 1
		}
		stats.AveragePerDay = float64(prefs.TotalViewed) / float64(days)
	}
	return stats
}

func filterByCategories(pool []models.Affirmation, categories []models.Category) []models.Affirmation {
	if len(categories) == 0 {
		return nil
	}
	allowed := make(map[models.Category]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}
	var matched []models.Affirmation
	for _, a := range pool {
		if _, ok := allowed[a.Category]; ok {
			matched = append(matched, a)
		}
	}
	return matched
}

func lastN(ids []string, n int) []string {
	if n <= 0 || len(ids) == 0 {
		return nil
	}
	if len(ids) <= n {
		return ids
	}
	return ids[len(ids)-n:]
}
