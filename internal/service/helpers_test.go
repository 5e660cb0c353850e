package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alexanderramin/fitcoach/internal/advisor"
	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/alexanderramin/fitcoach/internal/knowledge"
	"github.com/alexanderramin/fitcoach/internal/repository"
	"github.com/alexanderramin/fitcoach/internal/testutil"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *advisor.Resolver {
	t.Helper()
	r, err := advisor.New(knowledge.Default(), advisor.DefaultPolicy())
	require.NoError(t, err)
	return r
}

func newTestRunRepo(t *testing.T) repository.RunRepo {
	t.Helper()
	return repository.NewSQLiteRunRepo(testutil.NewTestDB(t))
}

type recordingUseCaseObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingUseCaseObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingUseCaseObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type failingRunRepo struct{}

var errDiskGone = errors.New("disk gone")

func (failingRunRepo) Create(context.Context, *domain.AnalysisRun) error { return errDiskGone }
func (failingRunRepo) ListRecent(context.Context, int) ([]*domain.AnalysisRun, error) {
	return nil, errDiskGone
}
func (failingRunRepo) Tally(context.Context) (repository.RunTally, error) {
	return repository.RunTally{}, errDiskGone
}

// latestRun returns the newest stored run and checks it is the one with id.
func latestRun(t *testing.T, runs repository.RunRepo, id string) domain.AnalysisRun {
	t.Helper()
	recent, err := runs.ListRecent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, id, recent[0].ID)
	return *recent[0]
}
