package client

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every validation failure raised before
// a request leaves the process. Detect it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

func requiredArg(field string) error {
	return fmt.Errorf("%w: %s is required", ErrInvalidArgument, field)
}

// APIError is a non-2xx reply from the Graph API. The body is kept
// verbatim so callers can inspect the platform's error object.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whatsapp api: status %d: %s", e.StatusCode, truncateBody(e.Body, 512))
}

func truncateBody(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
