package messages

import "fmt"

// Template sends a pre-approved message template by name. Components fill
// the template's placeholders.
type Template struct {
	Name       string              `json:"name"`
	Language   TemplateLanguage    `json:"language"`
	Components []TemplateComponent `json:"components,omitempty"`
}

// TemplateLanguage selects the template translation. Policy is always
// "deterministic" on current API versions.
type TemplateLanguage struct {
	Code   string `json:"code"`
	Policy string `json:"policy,omitempty"`
}

// TemplateComponent fills one template section (header, body or button).
type TemplateComponent struct {
	Type       string              `json:"type"`
	SubType    string              `json:"sub_type,omitempty"` // buttons only: "quick_reply" | "url"
	Index      *int                `json:"index,omitempty"`    // buttons only: position 0-9
	Parameters []TemplateParameter `json:"parameters,omitempty"`
}

// TemplateParameter is a single placeholder value. Type selects which of
// the value fields is read.
type TemplateParameter struct {
	Type     string            `json:"type"`
	Text     string            `json:"text,omitempty"`
	Payload  string            `json:"payload,omitempty"`
	Currency *TemplateCurrency `json:"currency,omitempty"`
	DateTime *TemplateDateTime `json:"date_time,omitempty"`
	Image    *Image            `json:"image,omitempty"`
	Document *Document         `json:"document,omitempty"`
	Video    *Video            `json:"video,omitempty"`
}

// TemplateCurrency is a localized money amount. Amount1000 is the value
// multiplied by 1000.
type TemplateCurrency struct {
	FallbackValue string `json:"fallback_value"`
	Code          string `json:"code"`
	Amount1000    int64  `json:"amount_1000"`
}

// TemplateDateTime is a localized timestamp; the API only renders the
// fallback value.
type TemplateDateTime struct {
	FallbackValue string `json:"fallback_value"`
}

// NewTemplate builds a template message for the given template name and
// language code.
func NewTemplate(name, languageCode string, components ...TemplateComponent) (*Template, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: template requires a name", ErrInvalidMessage)
	}
	if languageCode == "" {
		return nil, fmt.Errorf("%w: template requires a language code", ErrInvalidMessage)
	}
	for _, c := range components {
		switch c.Type {
		case "header", "body":
		case "button":
			if c.Index == nil {
				return nil, fmt.Errorf("%w: template button components require an index", ErrInvalidMessage)
			}
		default:
			return nil, fmt.Errorf("%w: unknown template component type %q", ErrInvalidMessage, c.Type)
		}
	}
	return &Template{
		Name:       name,
		Language:   TemplateLanguage{Code: languageCode},
		Components: components,
	}, nil
}

// TextParameter is a convenience constructor for a text placeholder.
func TextParameter(text string) TemplateParameter {
	return TemplateParameter{Type: "text", Text: text}
}

// BodyComponent is a convenience constructor for a body component.
func BodyComponent(params ...TemplateParameter) TemplateComponent {
	return TemplateComponent{Type: "body", Parameters: params}
}

func (*Template) MessageType() string { return TypeTemplate }
