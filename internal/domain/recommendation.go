package domain

// RecommendationKey identifies a knowledge-base entry.
type RecommendationKey struct {
	Body      BodyCategory
	Objective Objective
}

func (k RecommendationKey) String() string {
	return string(k.Body) + "/" + string(k.Objective)
}

// DefaultRecommendationKey is the entry used when nothing matches the body category.
var DefaultRecommendationKey = RecommendationKey{Body: BodyNormal, Objective: ObjectiveStrength}

// RecommendationRecord is static plan content. Exercises are listed in
// prescription order and must be non-empty.
type RecommendationRecord struct {
	Exercises    []string
	DietGuidance string
	ExpertNote   string
}

// Clone returns a copy whose exercise slice does not alias the receiver's.
func (r RecommendationRecord) Clone() RecommendationRecord {
	out := r
	out.Exercises = append([]string(nil), r.Exercises...)
	return out
}
