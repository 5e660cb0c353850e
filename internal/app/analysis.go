package app

import (
	"errors"
	"time"

	"github.com/alexanderramin/fitcoach/internal/advisor"
	"github.com/alexanderramin/fitcoach/internal/domain"
)

type AnalysisRequest struct {
	Body      string // raw user input, normalised by the use case
	Objective string
	Now       *time.Time
}

func NewAnalysisRequest(body, objective string) AnalysisRequest {
	return AnalysisRequest{Body: body, Objective: objective}
}

// AnalysisResponse is the result of one "run analysis" action. When NoData is
// set, Reading and Decision are nil and nothing stale is carried over.
type AnalysisResponse struct {
	RunID       string
	GeneratedAt time.Time
	Body        domain.BodyCategory
	Objective   domain.Objective
	Source      string
	Reading     *domain.Reading
	Decision    *advisor.Decision
	NoData      bool
	NoDataCause string
	Warnings    []string
}

type AnalysisErrorCode string

const (
	AnalysisErrInvalidCategory   AnalysisErrorCode = "INVALID_CATEGORY"
	AnalysisErrSensorUnavailable AnalysisErrorCode = "SENSOR_UNAVAILABLE"
)

type AnalysisError struct {
	Code    AnalysisErrorCode
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// IsAnalysisErrorCode reports whether err is an *AnalysisError with the given code.
func IsAnalysisErrorCode(err error, code AnalysisErrorCode) bool {
	var ae *AnalysisError
	return errors.As(err, &ae) && ae.Code == code
}
