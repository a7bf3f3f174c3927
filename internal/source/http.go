package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// HTTPLoader fetches the bodies listing from the REST API.
type HTTPLoader struct {
	url    string
	client *http.Client
}

// HTTPOption configures an HTTPLoader.
type HTTPOption func(*httpConfig)

type httpConfig struct {
	timeout   time.Duration
	transport http.RoundTripper
	logger    *slog.Logger
}

// WithTimeout bounds the whole request, body included.
func WithTimeout(d time.Duration) HTTPOption {
	return func(c *httpConfig) { c.timeout = d }
}

// WithTransport replaces the underlying transport.
func WithTransport(rt http.RoundTripper) HTTPOption {
	return func(c *httpConfig) { c.transport = rt }
}

// WithLogger sets the logger used for request logging.
func WithLogger(l *slog.Logger) HTTPOption {
	return func(c *httpConfig) { c.logger = l }
}

// NewHTTPLoader returns a loader for url. An empty url means DefaultURL.
func NewHTTPLoader(url string, opts ...HTTPOption) *HTTPLoader {
	if url == "" {
		url = DefaultURL
	}
	cfg := httpConfig{timeout: 30 * time.Second, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &HTTPLoader{
		url: url,
		client: &http.Client{
			Timeout:   cfg.timeout,
			Transport: NewLoggingRoundTripper(cfg.transport, WithRoundTripLogger(cfg.logger)),
		},
	}
}

// Name returns the endpoint URL.
func (l *HTTPLoader) Name() string { return l.url }

// Load performs a GET and decodes the JSON payload.
func (l *HTTPLoader) Load(ctx context.Context) (Snapshot, error) {
	body, err := l.Fetch(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode response: %w", err)
	}
	return snap, nil
}

// Fetch returns the raw response body.
func (l *HTTPLoader) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}
