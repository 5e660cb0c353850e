package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitcoach/internal/app"
)

// FormatPlans lists every plan in table order with its paired sets.
func FormatPlans(plans []app.PlanEntry) string {
	if len(plans) == 0 {
		return Dim("No plans configured.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Workout Plans"))
	b.WriteString("\n")
	for i, p := range plans {
		if i > 0 {
			b.WriteString("\n")
		}
		key := p.Entry.Key
		b.WriteString(fmt.Sprintf("%s %s %s  %s\n",
			StylePurple.Render(key.Body.Label()), Dim("·"), StylePurple.Render(key.Objective.Label()),
			Dim(fmt.Sprintf("intensity %d%%", p.Forecast))))

		rows := make([][]string, 0, len(p.Entry.Record.Exercises))
		for j, ex := range p.Entry.Record.Exercises {
			sets := ""
			if j < len(p.RepScheme) {
				sets = p.RepScheme[j]
			}
			rows = append(rows, []string{ex, sets})
		}
		b.WriteString(RenderTable([]string{"Exercise Name", "Sets/Reps"}, rows))
		b.WriteString(Dim("Expert: ") + p.Entry.Record.ExpertNote + "\n")
		b.WriteString(Dim("Diet:   ") + p.Entry.Record.DietGuidance + "\n")
	}
	return b.String()
}
