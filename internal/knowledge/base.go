// Package knowledge holds the static recommendation table.
package knowledge

import "github.com/alexanderramin/fitcoach/internal/domain"

// Entry pairs a key with its record.
type Entry struct {
	Key    domain.RecommendationKey
	Record domain.RecommendationRecord
}

// Base is a read-only mapping from RecommendationKey to RecommendationRecord.
// Iteration order is the order entries were given to New. A Base is safe for
// concurrent readers.
type Base struct {
	entries []Entry
	index   map[domain.RecommendationKey]int
}

// New builds a Base from entries. A repeated key keeps its first position but
// takes the later record.
func New(entries ...Entry) *Base {
	b := &Base{index: make(map[domain.RecommendationKey]int, len(entries))}
	for _, e := range entries {
		e.Record = e.Record.Clone()
		if i, ok := b.index[e.Key]; ok {
			b.entries[i] = e
			continue
		}
		b.index[e.Key] = len(b.entries)
		b.entries = append(b.entries, e)
	}
	return b
}

// Default returns the built-in table.
func Default() *Base {
	return New(
		Entry{
			Key: domain.RecommendationKey{Body: domain.BodyObease, Objective: domain.ObjectiveCardio},
			Record: domain.RecommendationRecord{
				Exercises:    []string{"Low-impact walking", "Water aerobics", "Seated cycling"},
				DietGuidance: "Focus on high-fiber, low-calorie density meals. Increase water intake to 3L daily.",
				ExpertNote:   "Start with 10-minute sessions to protect joints. Gradually increase to 20 minutes.",
			},
		},
		Entry{
			Key: domain.RecommendationKey{Body: domain.BodyOverweight, Objective: domain.ObjectiveCardio},
			Record: domain.RecommendationRecord{
				Exercises:    []string{"Brisk walking", "Elliptical trainer", "Incline walking"},
				DietGuidance: "Balance lean proteins with complex carbohydrates like oats and brown rice.",
				ExpertNote:   "Maintain a steady heart rate zone for at least 30 minutes for optimal fat oxidation.",
			},
		},
		Entry{
			Key: domain.RecommendationKey{Body: domain.BodyNormal, Objective: domain.ObjectiveStrength},
			Record: domain.RecommendationRecord{
				Exercises:    []string{"Barbell Squats", "Deadlifts", "Bench Press", "Pull-ups"},
				DietGuidance: "Slight caloric surplus. Aim for 1.6g of protein per kg of body weight.",
				ExpertNote:   "Focus on progressive overload—aim to increase weight or reps every week.",
			},
		},
		Entry{
			Key: domain.RecommendationKey{Body: domain.BodyUnderweight, Objective: domain.ObjectiveStrength},
			Record: domain.RecommendationRecord{
				Exercises:    []string{"Push-ups", "Dumbbell lunges", "Plank", "Bodyweight squats"},
				DietGuidance: "High protein and healthy fats. Incorporate nutrient-dense snacks between meals.",
				ExpertNote:   "Focus on movement quality and form over heavy weights initially.",
			},
		},
	)
}

// Lookup returns the record stored under key. Absence is reported by ok=false.
func (b *Base) Lookup(key domain.RecommendationKey) (domain.RecommendationRecord, bool) {
	i, ok := b.index[key]
	if !ok {
		return domain.RecommendationRecord{}, false
	}
	return b.entries[i].Record.Clone(), true
}

// FirstForBody returns the first entry, in table order, whose key has the
// given body category.
func (b *Base) FirstForBody(body domain.BodyCategory) (domain.RecommendationKey, domain.RecommendationRecord, bool) {
	for _, e := range b.entries {
		if e.Key.Body == body {
			return e.Key, e.Record.Clone(), true
		}
	}
	return domain.RecommendationKey{}, domain.RecommendationRecord{}, false
}

// Entries returns a copy of the table in order.
func (b *Base) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	for i, e := range b.entries {
		out[i] = Entry{Key: e.Key, Record: e.Record.Clone()}
	}
	return out
}
