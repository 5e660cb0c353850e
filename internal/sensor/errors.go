package sensor

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrSensorUnavailable indicates no reading could be produced this cycle.
	// Every error returned by a Source wraps it.
	ErrSensorUnavailable = errors.New("sensor unavailable")

	// ErrTimeout indicates the source did not answer within its deadline.
	ErrTimeout = errors.New("classification timed out")

	// ErrInvalidReading indicates the source answered with an unusable payload.
	ErrInvalidReading = errors.New("invalid sensor reading")
)

func unavailable(cause error) error {
	if cause == nil {
		return ErrSensorUnavailable
	}
	return fmt.Errorf("%w: %w", ErrSensorUnavailable, cause)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, ErrInvalidReading):
		return "INVALID_READING"
	case errors.Is(err, errSimulatedDropout):
		return "DROPOUT"
	case errors.Is(err, ErrSensorUnavailable):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
