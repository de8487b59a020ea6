package models

// Category is the closed set of affirmation themes.
type Category string

const (
	CategoryMotivation    Category = "motivation"
	CategoryLove          Category = "love"
	CategorySelfLove      Category = "self_love"
	CategorySuccess       Category = "success"
	CategoryHealth        Category = "health"
	CategoryConfidence    Category = "confidence"
	CategoryGratitude     Category = "gratitude"
	CategoryPeace         Category = "peace"
	CategoryRelationships Category = "relationships"
	CategoryAbundance     Category = "abundance"
	CategoryCreativity    Category = "creativity"
	CategorySpiritual     Category = "spiritual"
)

// AllCategories lists every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryMotivation, CategoryLove, CategorySelfLove, CategorySuccess,
		CategoryHealth, CategoryConfidence, CategoryGratitude, CategoryPeace,
		CategoryRelationships, CategoryAbundance, CategoryCreativity, CategorySpiritual,
	}
}

// ParseCategory maps an input string (raw value or display name) to a Category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllCategories() {
		if string(c) == s || c.DisplayName() == s {
			return c, true
		}
	}
	return "", false
}

func (c Category) DisplayName() string {
	switch c {
	case CategoryMotivation:
		return "Motivation"
	case CategoryLove:
		return "Love"
	case CategorySelfLove:
		return "Self Love"
	case CategorySuccess:
		return "Success"
	case CategoryHealth:
		return "Health"
	case CategoryConfidence:
		return "Confidence"
	case CategoryGratitude:
		return "Gratitude"
	case CategoryPeace:
		return "Peace"
	case CategoryRelationships:
		return "Relationships"
	case CategoryAbundance:
		return "Abundance"
	case CategoryCreativity:
		return "Creativity"
	case CategorySpiritual:
		return "Spiritual"
	default:
		return string(c)
	}
}

func (c Category) Description() string {
	switch c {
	case CategoryMotivation:
		return "Ignite your inner fire and drive"
	case CategoryLove, CategorySelfLove:
		return "Embrace self-love and acceptance"
	case CategorySuccess:
		return "Attract achievement and prosperity"
	case CategoryHealth:
		return "Nurture your body and wellness"
	case CategoryConfidence:
		return "Build unshakeable self-belief"
	case CategoryGratitude:
		return "Cultivate appreciation and joy"
	case CategoryPeace:
		return "Find calm and tranquility"
	case CategoryRelationships:
		return "Strengthen connections with others"
	case CategoryAbundance:
		return "Welcome prosperity and wealth"
	case CategoryCreativity:
		return "Unlock your creative potential"
	case CategorySpiritual:
		return "Connect with your inner wisdom"
	default:
		return ""
	}
}

// Icon returns the glyph shown next to the category in terminal output.
func (c Category) Icon() string {
	switch c {
	case CategoryMotivation:
		return "💪"
	case CategoryLove:
		return "❤️"
	case CategorySelfLove:
		return "💗"
	case CategorySuccess:
		return "🏆"
	case CategoryHealth:
		return "🌿"
	case CategoryConfidence:
		return "⭐"
	case CategoryGratitude:
		return "🙏"
	case CategoryPeace:
		return "🕊️"
	case CategoryRelationships:
		return "👥"
	case CategoryAbundance:
		return "💎"
	case CategoryCreativity:
		return "🎨"
	case CategorySpiritual:
		return "🌙"
	default:
		return "✨"
	}
}

// Mood is the closed set of user moods.
type Mood string

const (
	MoodEnergized Mood = "energized"
	MoodCalm      Mood = "calm"
	MoodFocused   Mood = "focused"
	MoodHappy     Mood = "happy"
	MoodGrateful  Mood = "grateful"
	MoodConfident Mood = "confident"
	MoodPeaceful  Mood = "peaceful"
	MoodMotivated Mood = "motivated"
)

// AllMoods lists every mood in display order.
func AllMoods() []Mood {
	return []Mood{
		MoodEnergized, MoodCalm, MoodFocused, MoodHappy,
		MoodGrateful, MoodConfident, MoodPeaceful, MoodMotivated,
	}
}

// ParseMood maps an input string (raw value or display name) to a Mood.
func ParseMood(s string) (Mood, bool) {
	for _, m := range AllMoods() {
		if string(m) == s || m.DisplayName() == s {
			return m, true
		}
	}
	return "", false
}

func (m Mood) DisplayName() string {
	switch m {
	case MoodEnergized:
		return "Energized"
	case MoodCalm:
		return "Calm"
	case MoodFocused:
		return "Focused"
	case MoodHappy:
		return "Happy"
	case MoodGrateful:
		return "Grateful"
	case MoodConfident:
		return "Confident"
	case MoodPeaceful:
		return "Peaceful"
	case MoodMotivated:
		return "Motivated"
	default:
		return string(m)
	}
}

func (m Mood) Icon() string {
	switch m {
	case MoodEnergized:
		return "⚡"
	case MoodCalm:
		return "😌"
	case MoodFocused:
		return "🎯"
	case MoodHappy:
		return "😊"
	case MoodGrateful:
		return "🙏"
	case MoodConfident:
		return "💪"
	case MoodPeaceful:
		return "🕊️"
	case MoodMotivated:
		return "🔥"
	default:
		return "✨"
	}
}

// SuggestedCategories returns the categories whose affirmations best match
// the mood.
func (m Mood) SuggestedCategories() []Category {
	switch m {
	case MoodEnergized:
		return []Category{CategoryMotivation, CategorySuccess, CategoryConfidence}
	case MoodCalm:
		return []Category{CategoryPeace, CategoryGratitude, CategoryHealth}
	case MoodFocused:
		return []Category{CategorySuccess, CategoryMotivation, CategoryConfidence}
	case MoodHappy:
		return []Category{CategoryGratitude, CategoryLove, CategoryRelationships}
	case MoodGrateful:
		return []Category{CategoryGratitude, CategoryAbundance, CategoryLove}
	case MoodConfident:
		return []Category{CategoryConfidence, CategorySuccess, CategoryMotivation}
	case MoodPeaceful:
		return []Category{CategoryPeace, CategoryGratitude, CategoryHealth}
	case MoodMotivated:
		return []Category{CategoryMotivation, CategorySuccess, CategoryAbundance}
	default:
		return nil
	}
}
