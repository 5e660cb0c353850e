package cli

import (
	"github.com/alexanderramin/fitcoach/internal/cli/formatter"
	"github.com/alexanderramin/fitcoach/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// fitcoachHuhTheme returns a huh theme using the Gruvbox palette.
func fitcoachHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// profileForm is the huh form behind the profile wizard. Selections are
// written into the pointed-to values as the user moves through the form.
func profileForm(body *domain.BodyCategory, objective *domain.Objective) *huh.Form {
	bodyOpts := make([]huh.Option[domain.BodyCategory], 0, len(domain.BodyCategories))
	for _, b := range domain.BodyCategories {
		bodyOpts = append(bodyOpts, huh.NewOption(b.Label(), b))
	}
	objOpts := make([]huh.Option[domain.Objective], 0, len(domain.Objectives))
	for _, o := range domain.Objectives {
		objOpts = append(objOpts, huh.NewOption(o.Label(), o))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.BodyCategory]().
				Title("Body Category").
				Options(bodyOpts...).
				Value(body),
			huh.NewSelect[domain.Objective]().
				Title("Fitness Objective").
				Options(objOpts...).
				Value(objective),
		),
	).WithTheme(fitcoachHuhTheme()).WithShowHelp(false)
}

// newProfileWizardView edits the session profile. The shared state only
// changes once the form completes.
func newProfileWizardView(state *SharedState) *wizardView {
	body := state.Profile.Body
	objective := state.Profile.Objective

	form := profileForm(&body, &objective)
	return newWizardView(state, "Profile", form, func() tea.Cmd {
		if !state.SetProfile(body, objective) {
			return nil
		}
		return func() tea.Msg { return profileChangedMsg{} }
	})
}
