package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Success(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "analyze",
		Duration: 1500 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"outcome": "completed", "body": "normal"},
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=analyze")
	assert.Contains(t, out, "duration_ms=1500")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("body=")), bytes.Index(buf.Bytes(), []byte("outcome=")))
}

func TestLogUseCaseObserver_Error(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "history",
		Err:  errors.New("boom"),
	})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	rec := &recordingUseCaseObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
