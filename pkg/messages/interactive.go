package messages

import "fmt"

// Interactive list and button limits imposed by the Cloud API.
const (
	maxReplyButtons   = 3
	maxListSections   = 10
	maxListRows       = 10
	maxRowTitleLength = 24
	maxButtonIDLength = 256
)

// Interactive is a message with tappable UI: reply buttons, a section
// list, or a call-to-action URL. The Type field mirrors the action kind
// and is filled in by the constructors.
type Interactive struct {
	Type   string             `json:"type"`
	Header *InteractiveHeader `json:"header,omitempty"`
	Body   *InteractiveBody   `json:"body,omitempty"`
	Footer *InteractiveFooter `json:"footer,omitempty"`
	Action any                `json:"action"`
}

// InteractiveHeader tops the interactive message. Exactly one of Text,
// Image, Video or Document should be set.
type InteractiveHeader struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	Image    *Image    `json:"image,omitempty"`
	Video    *Video    `json:"video,omitempty"`
	Document *Document `json:"document,omitempty"`
}

// InteractiveBody is the main text of an interactive message.
type InteractiveBody struct {
	Text string `json:"text"`
}

// InteractiveFooter is the small print under the body.
type InteractiveFooter struct {
	Text string `json:"text"`
}

// InteractiveOption configures optional parts of an interactive message.
type InteractiveOption func(*Interactive)

// WithHeader attaches a header.
func WithHeader(h *InteractiveHeader) InteractiveOption {
	return func(i *Interactive) { i.Header = h }
}

// WithFooter attaches a footer.
func WithFooter(text string) InteractiveOption {
	return func(i *Interactive) { i.Footer = &InteractiveFooter{Text: text} }
}

// TextHeader is a convenience constructor for a text-only header.
func TextHeader(text string) *InteractiveHeader {
	return &InteractiveHeader{Type: "text", Text: text}
}

// ReplyButton is one tappable quick-reply button.
type ReplyButton struct {
	ID    string
	Title string
}

type buttonAction struct {
	Buttons []wireButton `json:"buttons"`
}

type wireButton struct {
	Type  string          `json:"type"`
	Reply wireButtonReply `json:"reply"`
}

type wireButtonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// NewInteractiveButtons builds a reply-button message with up to three
// buttons.
func NewInteractiveButtons(body string, buttons []ReplyButton, opts ...InteractiveOption) (*Interactive, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: interactive body must not be empty", ErrInvalidMessage)
	}
	if len(buttons) == 0 || len(buttons) > maxReplyButtons {
		return nil, fmt.Errorf("%w: interactive buttons requires 1 to %d buttons, got %d",
			ErrInvalidMessage, maxReplyButtons, len(buttons))
	}
	wire := make([]wireButton, 0, len(buttons))
	for _, b := range buttons {
		if b.ID == "" || b.Title == "" {
			return nil, fmt.Errorf("%w: reply buttons require an id and a title", ErrInvalidMessage)
		}
		if len(b.ID) > maxButtonIDLength {
			return nil, fmt.Errorf("%w: button id %q exceeds %d characters", ErrInvalidMessage, b.ID, maxButtonIDLength)
		}
		wire = append(wire, wireButton{Type: "reply", Reply: wireButtonReply{ID: b.ID, Title: b.Title}})
	}
	i := &Interactive{
		Type:   "button",
		Body:   &InteractiveBody{Text: body},
		Action: buttonAction{Buttons: wire},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// ListSection groups rows inside a list message.
type ListSection struct {
	Title string    `json:"title,omitempty"`
	Rows  []ListRow `json:"rows"`
}

// ListRow is one selectable row of a list message.
type ListRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type listAction struct {
	Button   string        `json:"button"`
	Sections []ListSection `json:"sections"`
}

// NewInteractiveList builds a section-list message. button is the label
// that opens the list.
func NewInteractiveList(body, button string, sections []ListSection, opts ...InteractiveOption) (*Interactive, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: interactive body must not be empty", ErrInvalidMessage)
	}
	if button == "" {
		return nil, fmt.Errorf("%w: interactive list requires a button label", ErrInvalidMessage)
	}
	if len(sections) == 0 || len(sections) > maxListSections {
		return nil, fmt.Errorf("%w: interactive list requires 1 to %d sections, got %d",
			ErrInvalidMessage, maxListSections, len(sections))
	}
	for _, s := range sections {
		if len(s.Rows) == 0 || len(s.Rows) > maxListRows {
			return nil, fmt.Errorf("%w: list section %q requires 1 to %d rows, got %d",
				ErrInvalidMessage, s.Title, maxListRows, len(s.Rows))
		}
		for _, r := range s.Rows {
			if r.ID == "" || r.Title == "" {
				return nil, fmt.Errorf("%w: list rows require an id and a title", ErrInvalidMessage)
			}
			if n := len([]rune(r.Title)); n > maxRowTitleLength {
				return nil, fmt.Errorf("%w: row title %q is %d characters, limit is %d",
					ErrInvalidMessage, r.Title, n, maxRowTitleLength)
			}
		}
	}
	i := &Interactive{
		Type:   "list",
		Body:   &InteractiveBody{Text: body},
		Action: listAction{Button: button, Sections: sections},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

type ctaURLAction struct {
	Name       string           `json:"name"`
	Parameters ctaURLParameters `json:"parameters"`
}

type ctaURLParameters struct {
	DisplayText string `json:"display_text"`
	URL         string `json:"url"`
}

// NewInteractiveCTAURL builds a call-to-action message with a single URL
// button.
func NewInteractiveCTAURL(body, displayText, url string, opts ...InteractiveOption) (*Interactive, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: interactive body must not be empty", ErrInvalidMessage)
	}
	if displayText == "" || url == "" {
		return nil, fmt.Errorf("%w: cta_url requires a display text and a url", ErrInvalidMessage)
	}
	i := &Interactive{
		Type: "cta_url",
		Body: &InteractiveBody{Text: body},
		Action: ctaURLAction{
			Name:       "cta_url",
			Parameters: ctaURLParameters{DisplayText: displayText, URL: url},
		},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

func (*Interactive) MessageType() string { return TypeInteractive }
