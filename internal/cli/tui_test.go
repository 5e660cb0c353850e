package cli

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/fitcoach/internal/cli/formatter"
	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/alexanderramin/fitcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingSource holds every Classify call until release is called.
type blockingSource struct {
	gate  chan struct{}
	once  sync.Once
	mu    sync.Mutex
	calls int
}

func newBlockingSource(t *testing.T) *blockingSource {
	s := &blockingSource{gate: make(chan struct{})}
	t.Cleanup(s.release)
	return s
}

func (s *blockingSource) release() { s.once.Do(func() { close(s.gate) }) }

func (s *blockingSource) Name() string { return "blocking" }

func (s *blockingSource) Classify(ctx context.Context) (domain.Reading, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	select {
	case <-s.gate:
	case <-ctx.Done():
		return domain.Reading{}, ctx.Err()
	}
	return domain.Reading{Label: domain.ActivityCycling, HeartRate: 141, Source: s.Name(), CapturedAt: time.Now().UTC()}, nil
}

func (s *blockingSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestTUI_DashboardStartsWithWelcome(t *testing.T) {
	app, src := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	view := d.PlainView()
	assert.Contains(t, view, formatter.DashboardTitle)
	assert.Contains(t, view, "PROFILE")
	assert.Contains(t, view, "Normal · Cardio")
	assert.Contains(t, view, "stub")
	assert.Contains(t, view, "Welcome!")
	assert.Contains(t, view, "Sensor Connectivity: ACTIVE")
	assert.Contains(t, view, "Connected to PAMAP2 IMU Sensors")
	assert.Contains(t, view, formatter.FooterCaption)
	assert.Zero(t, src.Calls())
}

func TestTUI_AnalyzeShowsBundle(t *testing.T) {
	app, src := testApp(t, testutil.Reading(domain.ActivityRunning, 152))
	d := NewTestDriver(t, app)

	d.PressKey('a')

	assert.Equal(t, 1, src.Calls())
	view := d.PlainView()
	assert.NotContains(t, view, "Welcome!")
	assert.Contains(t, view, "Running")
	assert.Contains(t, view, "152 BPM")
	assert.Contains(t, view, "ACTIVE")
	assert.Contains(t, view, "Intensity Match")
	assert.Contains(t, view, "Barbell Squats")
	assert.Contains(t, view, "Intensity Level: 75%")
	assert.Contains(t, view, "Analyses this session: 1")
}

func TestTUI_EnterAlsoAnalyzes(t *testing.T) {
	app, src := testApp(t, testutil.Reading(domain.ActivityLying, 64))
	d := NewTestDriver(t, app)

	d.PressEnter()

	assert.Equal(t, 1, src.Calls())
	view := d.PlainView()
	assert.Contains(t, view, "SEDENTARY")
	assert.Contains(t, view, "Motion Alert")
}

func TestTUI_NoDataReplacesPreviousBundle(t *testing.T) {
	app, _ := testApp(t,
		testutil.Reading(domain.ActivityWalking, 118),
		testutil.Unavailable(),
	)
	d := NewTestDriver(t, app)

	d.PressKey('a')
	require.Contains(t, d.PlainView(), "118 BPM")

	d.PressKey('a')
	view := d.PlainView()
	assert.Contains(t, view, "No sensor data this cycle.")
	assert.NotContains(t, view, "118 BPM")
	assert.NotContains(t, view, "Walking")
	assert.NotContains(t, view, "Intensity Level")
}

func TestTUI_InProgressShowsSpinnerMessage(t *testing.T) {
	src := newBlockingSource(t)
	app := testAppWithSource(t, src)
	d := NewTestDriver(t, app)

	d.PressKey('a')
	assert.Contains(t, d.PlainView(), formatter.SyncMessage)

	// A second trigger while running is ignored.
	d.PressKey('a')
	assert.Equal(t, 1, src.Calls())

	src.release()
	d.Settle(2 * time.Second)

	view := d.PlainView()
	assert.NotContains(t, view, formatter.SyncMessage)
	assert.Contains(t, view, "Cycling")
	assert.Contains(t, view, "141 BPM")
	assert.Equal(t, 1, src.Calls())
}

func TestTUI_HistoryListsSessionRuns(t *testing.T) {
	app, _ := testApp(t,
		testutil.Reading(domain.ActivityStanding, 80),
		testutil.Unavailable(),
	)
	d := NewTestDriver(t, app)

	d.PressKey('a')
	d.PressKey('a')
	d.PressKey('h')

	assert.Equal(t, ViewHistory, d.ActiveViewID())
	view := d.PlainView()
	assert.Contains(t, view, "Dashboard › History")
	assert.Contains(t, view, "Standing")
	assert.Contains(t, view, "no data")
	assert.Contains(t, view, "2 runs · 0 active · 1 sedentary · 1 without data")

	d.PressEsc()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
}

func TestTUI_HistoryEmpty(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('h')
	assert.Contains(t, d.PlainView(), "No analyses yet this session.")

	d.PressKey('b')
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
}

func TestTUI_ProfileWizardUpdatesProfile(t *testing.T) {
	app, src := testApp(t, testutil.Reading(domain.ActivityWalking, 110))
	d := NewTestDriver(t, app)

	d.PressKey('p')
	require.Equal(t, ViewProfile, d.ActiveViewID())
	assert.Contains(t, d.PlainView(), "Body Category")

	d.PressDown() // normal → overweight
	d.PressEnter()
	d.PressEnter() // keep cardio

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, Profile{Body: domain.BodyOverweight, Objective: domain.ObjectiveCardio}, d.State().Profile)
	assert.Contains(t, d.PlainView(), "Overweight · Cardio")

	d.PressKey('a')
	assert.Equal(t, 1, src.Calls())
	view := d.PlainView()
	assert.Contains(t, view, "Brisk walking")
	assert.Contains(t, view, "exact match")
}

func TestTUI_ProfileWizardEscCancels(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('p')
	d.PressDown()
	d.PressEsc()

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, domain.BodyNormal, d.State().Profile.Body)
}

func TestTUI_ProfileWizardCapturesQ(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('p')
	d.PressKey('q')

	assert.False(t, d.IsQuitting())
	assert.Equal(t, ViewProfile, d.ActiveViewID())
}

func TestTUI_ProfileChangeClearsStaleBundle(t *testing.T) {
	app, _ := testApp(t, testutil.Reading(domain.ActivityWalking, 118))
	d := NewTestDriver(t, app)

	d.PressKey('a')
	require.Contains(t, d.PlainView(), "118 BPM")

	d.PressKey('p')
	d.PressDown()
	d.PressEnter()
	d.PressEnter()

	view := d.PlainView()
	assert.NotContains(t, view, "118 BPM")
	assert.Contains(t, view, "Welcome!")
}

func TestTUI_QuitWithQ(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
}

func TestTUI_ResultArrivesWhileHistoryOpen(t *testing.T) {
	src := newBlockingSource(t)
	app := testAppWithSource(t, src)
	d := NewTestDriver(t, app)

	d.PressKey('a')
	d.PressKey('h')
	require.Equal(t, ViewHistory, d.ActiveViewID())

	src.release()
	d.Settle(2 * time.Second)

	d.PressEsc()
	view := d.PlainView()
	assert.NotContains(t, view, formatter.SyncMessage)
	assert.Contains(t, view, "Cycling")
}
