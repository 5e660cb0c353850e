package domain

// BodyCategory is the user's self-selected body composition profile.
type BodyCategory string

// The "obease" spelling is the product's canonical value and is matched verbatim.
const (
	BodyNormal      BodyCategory = "normal"
	BodyOverweight  BodyCategory = "overweight"
	BodyObease      BodyCategory = "obease"
	BodyUnderweight BodyCategory = "underweight"
)

// BodyCategories lists the accepted body categories in display order.
var BodyCategories = []BodyCategory{BodyNormal, BodyOverweight, BodyObease, BodyUnderweight}

// Valid reports whether b is one of the declared body categories.
func (b BodyCategory) Valid() bool {
	for _, c := range BodyCategories {
		if b == c {
			return true
		}
	}
	return false
}

// Label returns the capitalised form shown in selectors.
func (b BodyCategory) Label() string {
	return capitalize(string(b))
}

type Objective string

const (
	ObjectiveCardio   Objective = "cardio"
	ObjectiveStrength Objective = "strength"
)

// Objectives lists the accepted fitness objectives in display order.
var Objectives = []Objective{ObjectiveCardio, ObjectiveStrength}

func (o Objective) Valid() bool {
	return o == ObjectiveCardio || o == ObjectiveStrength
}

func (o Objective) Label() string {
	return capitalize(string(o))
}

// ActivityLabel is a movement class emitted by a classification source.
type ActivityLabel string

const (
	ActivitySitting  ActivityLabel = "Sitting"
	ActivityWalking  ActivityLabel = "Walking"
	ActivityRunning  ActivityLabel = "Running"
	ActivityStanding ActivityLabel = "Standing"
	ActivityCycling  ActivityLabel = "Cycling"
	ActivityLying    ActivityLabel = "Lying"
)

// SimulatedActivities is the output domain of the demo simulator.
// It never produces Lying.
var SimulatedActivities = []ActivityLabel{
	ActivitySitting,
	ActivityWalking,
	ActivityRunning,
	ActivityStanding,
	ActivityCycling,
}

// KnownActivity reports whether label is any activity the dashboard understands,
// including ones the simulator never produces.
func KnownActivity(label ActivityLabel) bool {
	switch label {
	case ActivitySitting, ActivityWalking, ActivityRunning,
		ActivityStanding, ActivityCycling, ActivityLying:
		return true
	}
	return false
}

type ActivityStatus string

const (
	StatusSedentary ActivityStatus = "Sedentary"
	StatusActive    ActivityStatus = "Active"
)

// MatchKind records how a recommendation record was chosen.
type MatchKind string

const (
	MatchExact        MatchKind = "exact"
	MatchBodyFallback MatchKind = "body_fallback"
	MatchDefault      MatchKind = "default"
)

// RunOutcome is the terminal state of one analysis run.
type RunOutcome string

const (
	OutcomeCompleted RunOutcome = "completed"
	OutcomeNoData    RunOutcome = "no_data"
)

func capitalize(s string) string {
	if s == "" {
		return s
	}
	first := s[0]
	if first >= 'a' && first <= 'z' {
		first -= 'a' - 'A'
	}
	return string(first) + s[1:]
}
