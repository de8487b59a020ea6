package models

import "time"

type seed struct {
	id       string
	text     string
	category Category
	mood     Mood
}

var seedAffirmations = []seed{
	// Morning
	{"morning-01", "Today is full of endless possibilities", CategoryMotivation, MoodEnergized},
	{"morning-02", "I wake up motivated and ready to conquer the day", CategoryMotivation, MoodEnergized},
	{"morning-03", "This morning brings new opportunities for growth", CategorySuccess, MoodEnergized},
	{"morning-04", "I am grateful for this beautiful new day", CategoryGratitude, MoodGrateful},
	{"morning-05", "My energy is renewed with the sunrise", CategoryHealth, MoodEnergized},

	// Evening
	{"evening-01", "I am proud of all I accomplished today", CategorySuccess, MoodHappy},
	{"evening-02", "Tonight I rest knowing I did my best", CategoryPeace, MoodPeaceful},
	{"evening-03", "I release today's stress and welcome peaceful sleep", CategoryPeace, MoodCalm},
	{"evening-04", "Tomorrow is another chance to grow", CategoryMotivation, MoodCalm},
	{"evening-05", "I am grateful for today's experiences", CategoryGratitude, MoodGrateful},

	// Motivational
	{"motivation-01", "I am capable of achieving anything I set my mind to", CategoryMotivation, MoodMotivated},
	{"motivation-02", "Every challenge is an opportunity to grow stronger", CategoryMotivation, MoodMotivated},
	{"motivation-03", "I have the power to create positive change", CategoryMotivation, MoodMotivated},
	{"motivation-04", "My potential is limitless", CategoryMotivation, MoodMotivated},
	{"motivation-05", "I am becoming the best version of myself", CategoryMotivation, MoodMotivated},

	// Self love
	{"selflove-01", "I am worthy of love and respect", CategoryLove, MoodHappy},
	{"selflove-02", "I accept myself completely and unconditionally", CategoryLove, MoodCalm},
	{"selflove-03", "I am enough exactly as I am", CategoryLove, MoodHappy},
	{"selflove-04", "I deserve all the good things life has to offer", CategoryLove, MoodHappy},
	{"selflove-05", "I love and approve of myself", CategoryLove, MoodCalm},

	// Success
	{"success-01", "Success flows to me easily and effortlessly", CategorySuccess, MoodConfident},
	{"success-02", "I attract abundance in all areas of my life", CategorySuccess, MoodConfident},
	{"success-03", "Every day I am moving closer to my goals", CategorySuccess, MoodMotivated},
	{"success-04", "I am a magnet for success and prosperity", CategorySuccess, MoodConfident},
	{"success-05", "My success inspires others to achieve their dreams", CategorySuccess, MoodConfident},

	// Health
	{"health-01", "My body is healthy, strong, and full of energy", CategoryHealth, MoodEnergized},
	{"health-02", "I make choices that nourish my mind, body, and soul", CategoryHealth, MoodCalm},
	{"health-03", "Every cell in my body radiates health and vitality", CategoryHealth, MoodEnergized},
	{"health-04", "I am grateful for my body and treat it with respect", CategoryHealth, MoodGrateful},
	{"health-05", "I am becoming healthier and stronger every day", CategoryHealth, MoodEnergized},

	// Confidence
	{"confidence-01", "I radiate confidence and self-assurance", CategoryConfidence, MoodConfident},
	{"confidence-02", "I trust my intuition and make decisions with ease", CategoryConfidence, MoodConfident},
	{"confidence-03", "I am comfortable being my authentic self", CategoryConfidence, MoodConfident},
	{"confidence-04", "My confidence grows stronger every day", CategoryConfidence, MoodConfident},
	{"confidence-05", "I believe in my abilities and express my true self", CategoryConfidence, MoodConfident},

	// Gratitude
	{"gratitude-01", "I am grateful for all the blessings in my life", CategoryGratitude, MoodGrateful},
	{"gratitude-02", "Gratitude fills my heart and guides my actions", CategoryGratitude, MoodGrateful},
	{"gratitude-03", "I appreciate the abundance that surrounds me", CategoryGratitude, MoodGrateful},
	{"gratitude-04", "Every day I find new reasons to be thankful", CategoryGratitude, MoodGrateful},
	{"gratitude-05", "My life is full of things to be grateful for", CategoryGratitude, MoodGrateful},

	// Peace
	{"peace-01", "Peace flows through me like a gentle river", CategoryPeace, MoodPeaceful},
	{"peace-02", "I am centered, calm, and at peace", CategoryPeace, MoodCalm},
	{"peace-03", "I release all worries and embrace tranquility", CategoryPeace, MoodPeaceful},
	{"peace-04", "My mind is clear and my heart is peaceful", CategoryPeace, MoodPeaceful},
	{"peace-05", "I choose peace over perfection", CategoryPeace, MoodCalm},
}

// SeedPool returns the built-in affirmation pool. Ids are stable slugs so
// favorites and view history survive application upgrades.
func SeedPool() []Affirmation {
	added := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	pool := make([]Affirmation, 0, len(seedAffirmations))
	for _, s := range seedAffirmations {
		pool = append(pool, Affirmation{
			ID:        s.id,
			Text:      s.text,
			Category:  s.category,
			Mood:      s.mood,
			DateAdded: added,
		})
	}
	return pool
}
