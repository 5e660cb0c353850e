// Package advisor turns a profile and a detected activity into a recommendation.
package advisor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/alexanderramin/fitcoach/internal/knowledge"
)

// ErrConfigurationInvariant indicates the static tables cannot serve every
// reachable request.
var ErrConfigurationInvariant = errors.New("configuration invariant violated")

// ConfigurationError lists every problem found while validating the tables.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid recommendation configuration: %s", strings.Join(e.Problems, "; "))
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfigurationInvariant
}

// Decision is the full display-ready result of one resolution.
type Decision struct {
	Body              domain.BodyCategory
	Objective         domain.Objective
	Label             domain.ActivityLabel
	Status            domain.ActivityStatus
	Message           Message
	Match             Match
	RepScheme         []string
	Prescription      []ExerciseRow
	IntensityForecast int
}

// Resolver resolves decisions over a validated knowledge base and policy.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	base   *knowledge.Base
	policy Policy
}

// New validates base and policy and returns a Resolver.
func New(base *knowledge.Base, policy Policy) (*Resolver, error) {
	if base == nil {
		return nil, &ConfigurationError{Problems: []string{"knowledge base is nil"}}
	}
	policy = policy.clone()
	if problems := validate(base, policy); len(problems) > 0 {
		return nil, &ConfigurationError{Problems: problems}
	}
	return &Resolver{base: base, policy: policy}, nil
}

// Base returns the knowledge base the resolver reads from.
func (r *Resolver) Base() *knowledge.Base { return r.base }

// Policy returns a copy of the resolver's policy.
func (r *Resolver) Policy() Policy { return r.policy.clone() }

// Resolve is total: any body category, including one outside the enumeration,
// resolves through the fallback chain.
func (r *Resolver) Resolve(body domain.BodyCategory, objective domain.Objective, label domain.ActivityLabel) Decision {
	status := DeriveStatus(label)
	match, _ := ResolveRecord(r.base, body, objective)
	scheme := SelectRepScheme(r.policy, objective, len(match.Record.Exercises))
	return Decision{
		Body:              body,
		Objective:         objective,
		Label:             label,
		Status:            status,
		Message:           DeriveMessage(status, label),
		Match:             match,
		RepScheme:         scheme,
		Prescription:      pairRows(match.Record.Exercises, scheme),
		IntensityForecast: IntensityForecast(r.policy, objective),
	}
}

// unknownBody stands in for any body category absent from the table.
const unknownBody domain.BodyCategory = ""

func validate(base *knowledge.Base, policy Policy) []string {
	var problems []string

	if _, ok := base.Lookup(domain.DefaultRecommendationKey); !ok {
		problems = append(problems, fmt.Sprintf("default entry %s is missing", domain.DefaultRecommendationKey))
	}
	for _, e := range base.Entries() {
		if len(e.Record.Exercises) == 0 {
			problems = append(problems, fmt.Sprintf("entry %s has no exercises", e.Key))
		}
	}
	for _, o := range domain.Objectives {
		if len(policy.RepSchemes[o]) == 0 {
			problems = append(problems, fmt.Sprintf("objective %s has no rep scheme", o))
		}
		if _, ok := policy.Forecasts[o]; !ok {
			problems = append(problems, fmt.Sprintf("objective %s has no intensity forecast", o))
		}
	}
	if len(problems) > 0 {
		return problems
	}

	bodies := reachableBodies(base)
	for _, o := range domain.Objectives {
		scheme := policy.RepSchemes[o]
		for _, b := range bodies {
			m, _ := ResolveRecord(base, b, o)
			if len(m.Record.Exercises) > len(scheme) {
				problems = append(problems, fmt.Sprintf(
					"rep scheme for %s has %d entries but %s resolves to %s with %d exercises",
					o, len(scheme), describeBody(b), m.Key, len(m.Record.Exercises)))
			}
		}
	}
	return problems
}

func reachableBodies(base *knowledge.Base) []domain.BodyCategory {
	seen := map[domain.BodyCategory]bool{}
	var out []domain.BodyCategory
	add := func(b domain.BodyCategory) {
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	for _, b := range domain.BodyCategories {
		add(b)
	}
	for _, e := range base.Entries() {
		add(e.Key.Body)
	}
	add(unknownBody)
	return out
}

func describeBody(b domain.BodyCategory) string {
	if b == unknownBody {
		return "an unknown body category"
	}
	return string(b)
}
