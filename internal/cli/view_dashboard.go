package cli

import (
	"context"
	"fmt"
	"strings"

	fitapp "github.com/alexanderramin/fitcoach/internal/app"
	"github.com/alexanderramin/fitcoach/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// analysisDoneMsg carries the result of one analysis back to the dashboard.
type analysisDoneMsg struct {
	seq  int
	resp *fitapp.AnalysisResponse
	err  error
}

// dashboardView is the home screen of the TUI: the active profile on the
// left, the latest analysis bundle on the right.
type dashboardView struct {
	state   *SharedState
	spinner spinner.Model

	running bool
	seq     int
	resp    *fitapp.AnalysisResponse
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = formatter.StyleHeader
	return &dashboardView{state: state, spinner: s}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a", "analyze")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd { return nil }

// startAnalysis runs one analysis against the current profile. Only one run
// is in flight at a time.
func (v *dashboardView) startAnalysis() tea.Cmd {
	if v.running {
		return nil
	}
	v.running = true
	v.err = nil
	v.seq++
	v.state.Runs++

	seq := v.seq
	app := v.state.App
	p := v.state.Profile
	analyze := func() tea.Msg {
		req := fitapp.NewAnalysisRequest(string(p.Body), string(p.Objective))
		resp, err := app.Analysis.Analyze(context.Background(), req)
		return analysisDoneMsg{seq: seq, resp: resp, err: err}
	}
	return tea.Batch(v.spinner.Tick, analyze)
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisDoneMsg:
		if msg.seq != v.seq {
			return v, nil
		}
		v.running = false
		v.resp = msg.resp
		v.err = msg.err
		return v, nil

	case profileChangedMsg:
		// A bundle computed for another profile is no longer shown.
		if !v.running {
			v.resp = nil
			v.err = nil
		}
		return v, nil

	case spinner.TickMsg:
		if !v.running {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "a", "enter":
			return v, v.startAnalysis()
		case "p":
			if v.running {
				return v, nil
			}
			return v, pushView(newProfileWizardView(v.state))
		case "h":
			return v, pushView(newHistoryView(v.state))
		}
	}
	return v, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

const dashLeftPaneWidth = 34

func (v *dashboardView) View() string {
	left := v.renderProfilePane()
	right := v.renderResultPane()

	if v.state.Width < 80 {
		return left + "\n" + right
	}

	rightWidth := max(v.state.Width-dashLeftPaneWidth-3, 20)
	leftCol := lipgloss.NewStyle().Width(dashLeftPaneWidth).Render(left)
	divider := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render("│")
	rightCol := lipgloss.NewStyle().Width(rightWidth).Render(right)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol)
}

func (v *dashboardView) renderProfilePane() string {
	p := v.state.Profile
	var b strings.Builder
	b.WriteString("\n" + formatter.StyleHeader.Render("PROFILE") + "\n\n")
	b.WriteString(formatter.Metric("Body Category", p.Body.Label()) + "\n\n")
	b.WriteString(formatter.Metric("Fitness Objective", p.Objective.Label()) + "\n\n")
	if name := v.state.App.SourceName; name != "" {
		b.WriteString(formatter.Metric("Sensor", name) + "\n\n")
	}
	b.WriteString(formatter.FormatConnectivity() + "\n\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("Analyses this session: %d", v.state.Runs)) + "\n")
	return b.String()
}

func (v *dashboardView) renderResultPane() string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case v.running:
		b.WriteString(v.spinner.View() + " " + formatter.Dim(formatter.SyncMessage) + "\n")
	case v.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	case v.resp == nil:
		b.WriteString(formatter.StyleBlue.Render(formatter.WelcomeMessage) + "\n")
	case v.resp.NoData || v.resp.Decision == nil || v.resp.Reading == nil:
		b.WriteString(formatter.FormatNoData(v.resp.NoDataCause) + "\n")
	default:
		d := *v.resp.Decision
		b.WriteString(formatter.FormatMetrics(*v.resp.Reading, d.Status) + "\n\n")
		b.WriteString(formatter.FormatPlan(d) + "\n")
		b.WriteString(formatter.FormatNutrition(d, 20))
	}

	if v.resp != nil && !v.running {
		for _, w := range v.resp.Warnings {
			b.WriteString(formatter.StyleYellow.Render("warning: ") + formatter.Dim(w) + "\n")
		}
	}
	return b.String()
}
