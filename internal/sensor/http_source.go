package sensor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/fitcoach/internal/domain"
)

// HTTPConfig configures a model-backed classification source.
type HTTPConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// HTTPSource asks a remote inference service for a classification.
type HTTPSource struct {
	cfg      HTTPConfig
	http     *http.Client
	observer Observer
	now      func() time.Time
}

// NewHTTPSource creates a Source that POSTs to <Endpoint>/v1/classify.
func NewHTTPSource(cfg HTTPConfig, observer Observer) (*HTTPSource, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("http source endpoint is empty")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("http source timeout %s must be positive", cfg.Timeout)
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	return &HTTPSource{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.Timeout,
				}).DialContext,
			},
		},
		observer: observerOrNoop(observer),
		now:      time.Now,
	}, nil
}

func (s *HTTPSource) Name() string { return "inference@" + s.cfg.Endpoint }

type classifyRequest struct {
	RequestedAt string `json:"requested_at"`
}

type classifyResponse struct {
	Label     string `json:"label"`
	HeartRate int    `json:"heart_rate"`
}

func (s *HTTPSource) Classify(ctx context.Context) (domain.Reading, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	resp, err := s.doRequest(ctx)
	if err == nil {
		err = validateResponse(resp)
	}
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = unavailable(ErrTimeout)
		case errors.Is(ctx.Err(), context.Canceled):
			err = unavailable(context.Canceled)
		case !errors.Is(err, ErrSensorUnavailable):
			err = unavailable(err)
		}
		report(ctx, s.observer, s.Name(), start, err)
		return domain.Reading{}, err
	}

	report(ctx, s.observer, s.Name(), start, nil)
	return domain.Reading{
		Label:      domain.ActivityLabel(resp.Label),
		HeartRate:  resp.HeartRate,
		Source:     s.Name(),
		CapturedAt: s.now().UTC(),
	}, nil
}

func (s *HTTPSource) doRequest(ctx context.Context) (*classifyResponse, error) {
	data, err := json.Marshal(classifyRequest{RequestedAt: s.now().UTC().Format(time.RFC3339)})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint+"/v1/classify", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := s.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 64<<10))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference service returned status %d", httpResp.StatusCode)
	}

	var resp classifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, unavailable(fmt.Errorf("%w: %v", ErrInvalidReading, err))
	}
	return &resp, nil
}

func validateResponse(resp *classifyResponse) error {
	if !domain.KnownActivity(domain.ActivityLabel(resp.Label)) {
		return unavailable(fmt.Errorf("%w: unknown label %q", ErrInvalidReading, resp.Label))
	}
	if resp.HeartRate <= 0 {
		return unavailable(fmt.Errorf("%w: heart rate %d", ErrInvalidReading, resp.HeartRate))
	}
	return nil
}
