package knowledge

import (
	"testing"

	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(b domain.BodyCategory, o domain.Objective) domain.RecommendationKey {
	return domain.RecommendationKey{Body: b, Objective: o}
}

func TestDefault_InsertionOrder(t *testing.T) {
	entries := Default().Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, key(domain.BodyObease, domain.ObjectiveCardio), entries[0].Key)
	assert.Equal(t, key(domain.BodyOverweight, domain.ObjectiveCardio), entries[1].Key)
	assert.Equal(t, key(domain.BodyNormal, domain.ObjectiveStrength), entries[2].Key)
	assert.Equal(t, key(domain.BodyUnderweight, domain.ObjectiveStrength), entries[3].Key)
}

func TestDefault_EveryRecordHasExercises(t *testing.T) {
	for _, e := range Default().Entries() {
		assert.NotEmpty(t, e.Record.Exercises, "key=%s", e.Key)
		assert.NotEmpty(t, e.Record.DietGuidance, "key=%s", e.Key)
		assert.NotEmpty(t, e.Record.ExpertNote, "key=%s", e.Key)
	}
}

func TestDefault_RecordTextIsVerbatim(t *testing.T) {
	rec, ok := Default().Lookup(key(domain.BodyNormal, domain.ObjectiveStrength))
	require.True(t, ok)
	assert.Equal(t, "Focus on progressive overload—aim to increase weight or reps every week.", rec.ExpertNote)
	assert.Equal(t, "Slight caloric surplus. Aim for 1.6g of protein per kg of body weight.", rec.DietGuidance)
}

func TestLookup(t *testing.T) {
	b := Default()

	rec, ok := b.Lookup(key(domain.BodyOverweight, domain.ObjectiveCardio))
	require.True(t, ok)
	assert.Equal(t, []string{"Brisk walking", "Elliptical trainer", "Incline walking"}, rec.Exercises)

	_, ok = b.Lookup(key(domain.BodyObease, domain.ObjectiveStrength))
	assert.False(t, ok)

	_, ok = b.Lookup(key("", domain.ObjectiveCardio))
	assert.False(t, ok)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	b := Default()
	rec, _ := b.Lookup(domain.DefaultRecommendationKey)
	rec.Exercises[0] = "Leg Press"

	again, _ := b.Lookup(domain.DefaultRecommendationKey)
	assert.Equal(t, "Barbell Squats", again.Exercises[0])
}

func TestFirstForBody(t *testing.T) {
	b := New(
		Entry{Key: key(domain.BodyNormal, domain.ObjectiveCardio), Record: domain.RecommendationRecord{Exercises: []string{"Row"}}},
		Entry{Key: key(domain.BodyObease, domain.ObjectiveStrength), Record: domain.RecommendationRecord{Exercises: []string{"Carry"}}},
		Entry{Key: key(domain.BodyNormal, domain.ObjectiveStrength), Record: domain.RecommendationRecord{Exercises: []string{"Squat"}}},
	)

	k, rec, ok := b.FirstForBody(domain.BodyNormal)
	require.True(t, ok)
	assert.Equal(t, key(domain.BodyNormal, domain.ObjectiveCardio), k)
	assert.Equal(t, []string{"Row"}, rec.Exercises)

	_, _, ok = b.FirstForBody(domain.BodyUnderweight)
	assert.False(t, ok)
}

func TestNew_DuplicateKeyKeepsPosition(t *testing.T) {
	b := New(
		Entry{Key: key(domain.BodyNormal, domain.ObjectiveCardio), Record: domain.RecommendationRecord{Exercises: []string{"Row"}}},
		Entry{Key: key(domain.BodyObease, domain.ObjectiveCardio), Record: domain.RecommendationRecord{Exercises: []string{"Swim"}}},
		Entry{Key: key(domain.BodyNormal, domain.ObjectiveCardio), Record: domain.RecommendationRecord{Exercises: []string{"Bike"}}},
	)
	entries := b.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"Bike"}, entries[0].Record.Exercises)
}
