// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and returned Cmds are executed inline. A Cmd that
// does not return within CmdTimeout (animation ticks, slow sensor reads) is
// parked instead of blocking the test; Settle later collects parked results
// and feeds them through the model.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds recursive command draining.
const MaxDrainDepth = 100

// CmdTimeout separates instant Cmds from timer-driven ones. Spinner ticks
// fire every ~100ms and cursor blinks every ~530ms.
const CmdTimeout = 40 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg has been seen.
	Quitting bool

	pending []chan tea.Msg
}

type Option func(*Driver)

// New creates a Driver for model. Call DrainInit to run the model's Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyUp})
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

// Pending reports how many parked Cmds have not produced a message yet.
func (d *Driver) Pending() int {
	return len(d.pending)
}

// Settle waits up to timeout for parked Cmds and feeds their messages through
// the model. Animation ticks are dropped. It returns once nothing is parked or
// the timeout elapses.
func (d *Driver) Settle(timeout time.Duration) {
	d.T.Helper()
	deadline := time.Now().Add(timeout)
	for len(d.pending) > 0 && !d.Quitting {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		ch := d.pending[0]
		d.pending = d.pending[1:]

		select {
		case msg := <-ch:
			if msg == nil || isAnimationTick(msg) {
				continue
			}
			d.deliver(msg, 0)
		case <-time.After(remaining):
			d.pending = append([]chan tea.Msg{ch}, d.pending...)
			return
		}
	}
}

// ── draining ────────────────────────────────────────────────────────────────

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg, ok := d.exec(cmd)
	if !ok || msg == nil {
		return
	}
	d.deliver(msg, depth)
}

func (d *Driver) deliver(msg tea.Msg, depth int) {
	d.T.Helper()
	if isAnimationTick(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range m {
			d.drainCmd(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		updated, _ := d.Model.Update(m)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

// exec runs cmd and waits up to CmdTimeout. A slow Cmd keeps running in the
// background and is parked for Settle.
func (d *Driver) exec(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(CmdTimeout):
		d.pending = append(d.pending, ch)
		return nil, false
	}
}

// isAnimationTick matches spinner ticks and cursor blinks. Feeding them back
// would schedule another timer and never settle.
func isAnimationTick(msg tea.Msg) bool {
	if _, ok := msg.(spinner.TickMsg); ok {
		return true
	}
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
