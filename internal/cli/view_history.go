package cli

import (
	"context"
	"time"

	fitapp "github.com/alexanderramin/fitcoach/internal/app"
	"github.com/alexanderramin/fitcoach/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type historyLoadedMsg struct {
	resp *fitapp.HistoryResponse
	err  error
}

// historyView lists this session's analyses, newest first, in a scrollable viewport.
type historyView struct {
	state   *SharedState
	vp      viewport.Model
	resp    *fitapp.HistoryResponse
	err     error
	loading bool
	now     func() time.Time
}

func newHistoryView(state *SharedState) *historyView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
	return &historyView{
		state:   state,
		vp:      vp,
		loading: true,
		now:     time.Now,
	}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }

func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
	}
}

func (v *historyView) Init() tea.Cmd {
	return v.load()
}

func (v *historyView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		resp, err := app.History.History(context.Background(), fitapp.HistoryRequest{})
		return historyLoadedMsg{resp: resp, err: err}
	}
}

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		v.loading = false
		v.resp = msg.resp
		v.err = msg.err
		v.refreshContent()
		return v, nil

	case tea.WindowSizeMsg:
		v.vp.Width = max(msg.Width, 20)
		v.vp.Height = v.state.ContentHeight()
		v.refreshContent()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			v.loading = true
			return v, v.load()
		case "b":
			return v, popView()
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *historyView) refreshContent() {
	switch {
	case v.err != nil:
		v.vp.SetContent("\n" + formatter.StyleRed.Render("Error: "+v.err.Error()))
	case v.resp != nil:
		v.vp.SetContent("\n" + formatter.FormatHistory(v.resp, v.now()))
	}
}

func (v *historyView) View() string {
	if v.loading && v.resp == nil {
		return "\n  " + formatter.Dim("Loading...")
	}
	return v.vp.View()
}
