package cli

import (
	"strings"

	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/spf13/pflag"
)

// bodyFlag binds --body to a domain.BodyCategory, rejecting unknown values at parse time.
type bodyFlag struct {
	value *domain.BodyCategory
}

var _ pflag.Value = bodyFlag{}

func (f bodyFlag) String() string {
	if f.value == nil {
		return ""
	}
	return string(*f.value)
}

func (f bodyFlag) Set(s string) error {
	b, err := domain.ParseBodyCategory(s)
	if err != nil {
		return err
	}
	*f.value = b
	return nil
}

func (f bodyFlag) Type() string { return "body" }

type objectiveFlag struct {
	value *domain.Objective
}

var _ pflag.Value = objectiveFlag{}

func (f objectiveFlag) String() string {
	if f.value == nil {
		return ""
	}
	return string(*f.value)
}

func (f objectiveFlag) Set(s string) error {
	o, err := domain.ParseObjective(s)
	if err != nil {
		return err
	}
	*f.value = o
	return nil
}

func (f objectiveFlag) Type() string { return "objective" }

// addProfileFlags registers --body and --objective on fs, writing into p.
func addProfileFlags(fs *pflag.FlagSet, p *Profile) {
	bodies := make([]string, len(domain.BodyCategories))
	for i, b := range domain.BodyCategories {
		bodies[i] = string(b)
	}
	objectives := make([]string, len(domain.Objectives))
	for i, o := range domain.Objectives {
		objectives[i] = string(o)
	}

	fs.Var(bodyFlag{value: &p.Body}, "body", "Body category ("+strings.Join(bodies, ", ")+")")
	fs.Var(objectiveFlag{value: &p.Objective}, "objective", "Fitness objective ("+strings.Join(objectives, ", ")+")")
}
