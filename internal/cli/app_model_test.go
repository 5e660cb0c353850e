package cli

import (
	"strings"
	"testing"

	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }
func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func testModel(t *testing.T) appModel {
	t.Helper()
	app, _ := testApp(t)
	return newAppModel(app, app.Profile)
}

func TestNewAppModel_StartsAtDashboard(t *testing.T) {
	m := testModel(t)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewDashboard, m.activeView().ID())
	assert.Equal(t, Profile{Body: domain.BodyNormal, Objective: domain.ObjectiveCardio}, m.state.Profile)
}

func TestNewAppModel_InvalidProfileFallsBackToAppDefault(t *testing.T) {
	app, _ := testApp(t)
	m := newAppModel(app, Profile{Body: "athletic", Objective: domain.ObjectiveStrength})

	assert.Equal(t, app.Profile, m.state.Profile)
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := testModel(t)
	v2 := newStubView(ViewHistory, "History", "history view")

	model, _ := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())

	model, cmd := m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewDashboard, m.activeView().ID())

	// The dashboard is never popped.
	model, _ = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
}

func TestAppModel_PushSizesNewView(t *testing.T) {
	m := testModel(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)

	v := newStubView(ViewHistory, "History", "history")
	model, _ = m.Update(pushViewMsg{view: v})
	m = model.(appModel)

	require.Len(t, v.updateSeen, 1)
	size, ok := v.updateSeen[0].(tea.WindowSizeMsg)
	require.True(t, ok)
	assert.Equal(t, 100, size.Width)
}

func TestAppModel_WindowResizeReachesEveryView(t *testing.T) {
	m := testModel(t)
	bottom := newStubView(ViewDashboard, "Dashboard", "dashboard")
	top := newStubView(ViewHistory, "History", "history")
	m.viewStack = []View{bottom, top}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	assert.Len(t, bottom.updateSeen, 1)
	assert.Len(t, top.updateSeen, 1)
}

func TestAppModel_KeyHandling_GlobalAndCaptured(t *testing.T) {
	t.Run("q quits when active view does not capture input", func(t *testing.T) {
		m := testModel(t)
		m.viewStack = []View{newStubView(ViewDashboard, "Dashboard", "dashboard")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("capturing view receives q and esc", func(t *testing.T) {
		m := testModel(t)
		form := newStubView(ViewProfile, "Profile", "form")
		m.viewStack = []View{newStubView(ViewDashboard, "Dashboard", "dashboard"), form}

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)

		assert.False(t, m.quitting)
		require.Len(t, m.viewStack, 2)
		require.Len(t, form.updateSeen, 2)
		assert.Equal(t, "q", form.updateSeen[0].(tea.KeyMsg).String())
	})

	t.Run("esc pops back stack", func(t *testing.T) {
		m := testModel(t)
		m.viewStack = []View{
			newStubView(ViewDashboard, "Dashboard", "dashboard"),
			newStubView(ViewHistory, "History", "history"),
		}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		require.Nil(t, cmd)
		require.Len(t, m.viewStack, 1)
	})
}

func TestAppModel_WizardCompletePopsAndRunsFollowUp(t *testing.T) {
	m := testModel(t)
	m.viewStack = append(m.viewStack, newStubView(ViewProfile, "Profile", "form"))

	ran := false
	model, cmd := m.Update(wizardCompleteMsg{nextCmd: func() tea.Msg {
		ran = true
		return nil
	}})
	m = model.(appModel)

	require.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, ran)
}

func TestAppModel_ViewRendersHeaderAndHints(t *testing.T) {
	m := testModel(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)

	out := stripANSI(m.View())
	assert.Contains(t, out, "AI Smart Fitness Dashboard › Dashboard")
	assert.Contains(t, out, "[Normal · Cardio]")
	assert.Contains(t, out, "a: analyze")
	assert.Contains(t, out, "q: quit")
	assert.NotContains(t, out, "esc: back")
	assert.Contains(t, out, "Classical Machine Learning Activity Recognition v2.0")
	assert.Equal(t, 30, strings.Count(out, "\n")+1)
	assert.Equal(t, 25, m.state.ContentHeight())
}

func TestAppModel_QuittingRendersNothing(t *testing.T) {
	m := testModel(t)
	m.quitting = true
	assert.Empty(t, m.View())
}
