package cli

import (
	"testing"

	"github.com/alexanderramin/fitcoach/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app's default profile, sets the
// terminal size and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app, app.Profile)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state pointer held by the model.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting
}

// PlainView renders the current screen without ANSI styling.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}
