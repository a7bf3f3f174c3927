package source

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/xid"

	"github.com/papapumpkin/perihelion/internal/logx"
)

// LoggingRoundTripper implements http.RoundTripper and logs every request
// and response at debug level under a shared request ID.
type LoggingRoundTripper struct {
	next           http.RoundTripper
	logger         *slog.Logger
	logFieldMaxLen int
}

// RoundTripperOption configures a LoggingRoundTripper.
type RoundTripperOption func(*LoggingRoundTripper)

// WithLogFieldMaxLen truncates dumped requests and responses to n bytes.
// Zero disables truncation.
func WithLogFieldMaxLen(n int) RoundTripperOption {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = n
	}
}

// WithRoundTripLogger sets the logger. The default is slog.Default().
func WithRoundTripLogger(l *slog.Logger) RoundTripperOption {
	return func(rt *LoggingRoundTripper) {
		rt.logger = l
	}
}

// NewLoggingRoundTripper wraps next, or http.DefaultTransport when next is nil.
func NewLoggingRoundTripper(next http.RoundTripper, opts ...RoundTripperOption) LoggingRoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	rt := LoggingRoundTripper{
		next:           next,
		logger:         slog.Default(),
		logFieldMaxLen: 2048,
	}
	for _, opt := range opts {
		opt(&rt)
	}
	return rt
}

// RoundTrip implements http.RoundTripper.
func (rt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	requestID := xid.New().String()

	if rt.logger.Enabled(ctx, slog.LevelDebug) {
		reqBytes, err := httputil.DumpRequestOut(req, false)
		if err != nil {
			rt.logger.ErrorContext(ctx, "dump request", slog.String(logx.FieldRequestID, requestID), logx.Error(err))
		}
		rt.logger.DebugContext(ctx, logx.FieldHTTPRequest,
			slog.String(logx.FieldRequestID, requestID),
			slog.String(logx.FieldRequestBody, rt.truncate(reqBytes)),
		)
	}

	start := time.Now()
	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		rt.logger.WarnContext(ctx, "http request failed",
			slog.String(logx.FieldRequestID, requestID),
			slog.String(logx.FieldURL, req.URL.String()),
			logx.Error(err),
		)
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	if rt.logger.Enabled(ctx, slog.LevelDebug) {
		respBytes, err := httputil.DumpResponse(resp, false)
		if err != nil {
			rt.logger.ErrorContext(ctx, "dump response", slog.String(logx.FieldRequestID, requestID), logx.Error(err))
		}
		rt.logger.DebugContext(ctx, logx.FieldHTTPResponse,
			slog.String(logx.FieldRequestID, requestID),
			slog.Int(logx.FieldResponseStatus, resp.StatusCode),
			slog.String(logx.FieldResponseBody, rt.truncate(respBytes)),
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
		)
	}
	return resp, nil
}

func (rt LoggingRoundTripper) truncate(b []byte) string {
	if rt.logFieldMaxLen != 0 && len(b) > rt.logFieldMaxLen {
		b = b[:rt.logFieldMaxLen]
	}
	return string(b)
}
