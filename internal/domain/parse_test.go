package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBodyCategory_Normalises(t *testing.T) {
	cases := []struct {
		in   string
		want BodyCategory
	}{
		{"normal", BodyNormal},
		{"Normal", BodyNormal},
		{"  OVERWEIGHT ", BodyOverweight},
		{"Obease", BodyObease},
		{"underweight\n", BodyUnderweight},
	}
	for _, tc := range cases {
		got, err := ParseBodyCategory(tc.in)
		require.NoError(t, err, "input=%q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseBodyCategory_RejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "obese", "athletic", "normal strength"} {
		_, err := ParseBodyCategory(in)
		require.Error(t, err, "input=%q", in)
		assert.True(t, errors.Is(err, ErrInvalidCategory))

		var catErr *InvalidCategoryError
		require.True(t, errors.As(err, &catErr))
		assert.Equal(t, "body category", catErr.Field)
		assert.Equal(t, in, catErr.Value)
	}
}

func TestParseObjective(t *testing.T) {
	got, err := ParseObjective(" Cardio")
	require.NoError(t, err)
	assert.Equal(t, ObjectiveCardio, got)

	got, err = ParseObjective("STRENGTH")
	require.NoError(t, err)
	assert.Equal(t, ObjectiveStrength, got)

	_, err = ParseObjective("flexibility")
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Contains(t, err.Error(), "objective")
}

func TestBodyCategory_Valid(t *testing.T) {
	for _, b := range BodyCategories {
		assert.True(t, b.Valid(), "body=%s", b)
	}
	assert.False(t, BodyCategory("").Valid())
	assert.False(t, BodyCategory("Normal").Valid())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Obease", BodyObease.Label())
	assert.Equal(t, "Strength", ObjectiveStrength.Label())
}

func TestSimulatedActivities_ExcludeLying(t *testing.T) {
	assert.NotContains(t, SimulatedActivities, ActivityLying)
	assert.Len(t, SimulatedActivities, 5)
	assert.True(t, KnownActivity(ActivityLying))
	assert.False(t, KnownActivity("Swimming"))
}

func TestRecommendationRecord_Clone(t *testing.T) {
	r := RecommendationRecord{Exercises: []string{"Plank"}}
	c := r.Clone()
	c.Exercises[0] = "Squat"
	assert.Equal(t, "Plank", r.Exercises[0])
}
