package cli

import (
	"strings"

	"github.com/alexanderramin/fitcoach/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack with the dashboard at the bottom.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(app *App, profile Profile) appModel {
	state := &SharedState{App: app}
	if !state.SetProfile(profile.Body, profile.Objective) {
		state.SetProfile(app.Profile.Body, app.Profile.Objective)
	}

	m := appModel{state: state}
	m.viewStack = []View{newDashboardView(state)}
	return m
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Every view sizes its own widgets, including the ones underneath.
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		var cmds []tea.Cmd
		if m.state.Width > 0 {
			updated, cmd := msg.view.Update(tea.WindowSizeMsg{Width: m.state.Width, Height: m.state.Height})
			m.setActiveView(updated.(View))
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.activeView().Init())
		return m, tea.Batch(cmds...)

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case profileChangedMsg, analysisDoneMsg, spinner.TickMsg:
		// The dashboard may sit under another view while an analysis runs.
		return m, m.broadcast(msg)

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd
	}

	// Forward everything else (async results, spinner ticks) to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// broadcast delivers msg to every view on the stack so views underneath
// stay current with changes made above them.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms receive every key, including q and esc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleHeader.Render(formatter.DashboardTitle)

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	p := m.state.Profile
	profile := formatter.StyleGreen.Render(p.Body.Label() + " · " + p.Objective.Label())
	header := title + breadcrumb + "  " + formatter.Dim("[") + profile + formatter.Dim("]")

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 && !viewCapturesInput(m.activeView()) {
		hints = append(hints, formatter.Dim("esc: back"))
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	footer := lipgloss.NewStyle().MaxWidth(max(m.state.Width, 20)).Render(formatter.Dim(formatter.FooterCaption))
	return sep + "\n" + strings.Join(hints, "  ") + "\n" + footer
}

// viewCapturesInput returns true if the active view owns the keyboard
// (bypassing global keybindings like q and esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	return v.ID() == ViewProfile
}
