// Package transport holds the HTTP capability injected into the API
// client. The client only sees the Doer interface, so tests can swap the
// real network for a spy.
package transport

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single request on the default client. Callers
// needing finer control pass their own Doer or a request context.
const DefaultTimeout = 30 * time.Second

// Doer performs one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns an http.Client with the given timeout, falling
// back to DefaultTimeout when zero.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// LoggingTransport is an http.RoundTripper that tags each request with a
// correlation id and logs method, URL, status and duration.
type LoggingTransport struct {
	Inner http.RoundTripper
	Log   zerolog.Logger
}

// NewLoggingClient wraps a default client with request logging.
func NewLoggingClient(timeout time.Duration, log zerolog.Logger) *http.Client {
	c := NewHTTPClient(timeout)
	c.Transport = &LoggingTransport{Inner: http.DefaultTransport, Log: log}
	return c
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	inner := t.Inner
	if inner == nil {
		inner = http.DefaultTransport
	}

	// Clone the request to avoid mutating the original
	proxied := req.Clone(req.Context())
	requestID := uuid.NewString()
	proxied.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := inner.RoundTrip(proxied)
	elapsed := time.Since(start)

	if err != nil {
		t.Log.Error().
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("duration", elapsed).
			Err(err).
			Msg("request failed")
		return nil, err
	}

	t.Log.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("request completed")
	return resp, nil
}
