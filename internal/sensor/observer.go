package sensor

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// CallEvent records metadata about a single classification call.
type CallEvent struct {
	Source    string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about classification calls.
type Observer interface {
	OnClassify(ctx context.Context, event CallEvent)
}

// LogObserver writes classification events as structured log lines.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *LogObserver) OnClassify(ctx context.Context, event CallEvent) {
	if event.Success {
		o.logger.InfoContext(ctx, "sensor_classify",
			"source", event.Source,
			"latency_ms", event.LatencyMs,
		)
		return
	}
	o.logger.WarnContext(ctx, "sensor_classify",
		"source", event.Source,
		"latency_ms", event.LatencyMs,
		"error_code", event.ErrorCode,
	)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnClassify(context.Context, CallEvent) {}

func observerOrNoop(o Observer) Observer {
	if o == nil {
		return NoopObserver{}
	}
	return o
}

func report(ctx context.Context, o Observer, source string, start time.Time, err error) {
	o.OnClassify(ctx, CallEvent{
		Source:    source,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}
