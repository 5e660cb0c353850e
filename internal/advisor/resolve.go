package advisor

import (
	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/alexanderramin/fitcoach/internal/knowledge"
)

// Match is a resolved record together with how it was found.
type Match struct {
	Key    domain.RecommendationKey
	Kind   domain.MatchKind
	Record domain.RecommendationRecord
}

// ResolveRecord picks the record for (body, objective): the exact key, else the
// first entry in table order sharing the body category, else the default key.
// ok is false only when the table has no default entry.
func ResolveRecord(base *knowledge.Base, body domain.BodyCategory, objective domain.Objective) (Match, bool) {
	key := domain.RecommendationKey{Body: body, Objective: objective}
	if rec, ok := base.Lookup(key); ok {
		return Match{Key: key, Kind: domain.MatchExact, Record: rec}, true
	}
	if k, rec, ok := base.FirstForBody(body); ok {
		return Match{Key: k, Kind: domain.MatchBodyFallback, Record: rec}, true
	}
	if rec, ok := base.Lookup(domain.DefaultRecommendationKey); ok {
		return Match{Key: domain.DefaultRecommendationKey, Kind: domain.MatchDefault, Record: rec}, true
	}
	return Match{}, false
}
