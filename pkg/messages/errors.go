package messages

import "errors"

// ErrInvalidMessage is the sentinel wrapped by every builder validation
// failure, so callers can detect bad input with errors.Is before any
// request is attempted.
var ErrInvalidMessage = errors.New("invalid message")
