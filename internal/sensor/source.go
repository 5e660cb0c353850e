// Package sensor provides activity classification sources.
package sensor

import (
	"context"

	"github.com/alexanderramin/fitcoach/internal/domain"
)

// Source produces one activity reading per call. Calls are independent of
// each other. Implementations must return within a bounded time and report
// every failure as an error wrapping ErrSensorUnavailable.
type Source interface {
	Classify(ctx context.Context) (domain.Reading, error)
	Name() string
}
