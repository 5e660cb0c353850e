package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCategory indicates a body category or objective outside its enumeration.
var ErrInvalidCategory = errors.New("invalid category")

// InvalidCategoryError names the offending field and value.
type InvalidCategoryError struct {
	Field string
	Value string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("%s %q is not recognised", e.Field, e.Value)
}

func (e *InvalidCategoryError) Unwrap() error {
	return ErrInvalidCategory
}

// ParseBodyCategory normalises s (trim + lower-case) and matches it against
// the declared body categories.
func ParseBodyCategory(s string) (BodyCategory, error) {
	b := BodyCategory(normalize(s))
	if !b.Valid() {
		return "", &InvalidCategoryError{Field: "body category", Value: s}
	}
	return b, nil
}

// ParseObjective normalises s and matches it against the declared objectives.
func ParseObjective(s string) (Objective, error) {
	o := Objective(normalize(s))
	if !o.Valid() {
		return "", &InvalidCategoryError{Field: "objective", Value: s}
	}
	return o, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
