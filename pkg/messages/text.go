package messages

import "fmt"

// maxTextLength is the Cloud API limit for a text message body, in runes.
const maxTextLength = 4096

// Text is a plain text message. PreviewURL asks the platform to render a
// link preview for the first URL in the body.
type Text struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url,omitempty"`
}

// TextOption configures a Text message.
type TextOption func(*Text)

// WithPreviewURL enables link previews for the message body.
func WithPreviewURL() TextOption {
	return func(t *Text) { t.PreviewURL = true }
}

// NewText builds a text message, enforcing the platform's body limits.
func NewText(body string, opts ...TextOption) (*Text, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: text body must not be empty", ErrInvalidMessage)
	}
	if n := len([]rune(body)); n > maxTextLength {
		return nil, fmt.Errorf("%w: text body is %d characters, limit is %d", ErrInvalidMessage, n, maxTextLength)
	}
	t := &Text{Body: body}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func (*Text) MessageType() string { return TypeText }
