package client

import "encoding/json"

// SendResponse is the API's reply to a message send. Raw always holds the
// verbatim body; the decoded fields are populated only when the client
// was built with WithParsedResponses.
type SendResponse struct {
	Raw json.RawMessage `json:"-"`

	MessagingProduct string            `json:"messaging_product,omitempty"`
	Contacts         []ResponseContact `json:"contacts,omitempty"`
	Messages         []ResponseMessage `json:"messages,omitempty"`
}

// ResponseContact echoes the recipient as the platform resolved it.
type ResponseContact struct {
	Input string `json:"input"`
	WaID  string `json:"wa_id"`
}

// ResponseMessage carries the platform-assigned message id.
type ResponseMessage struct {
	ID string `json:"id"`
}

// MessageID returns the first assigned message id, or "" when the
// response was not parsed or carried none.
func (r *SendResponse) MessageID() string {
	if r == nil || len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0].ID
}

// StatusResponse is the API's reply to mark-as-read and QR deletion.
type StatusResponse struct {
	Raw json.RawMessage `json:"-"`

	Success bool `json:"success,omitempty"`
}

// MediaInfo resolves a media id to a short-lived download link. It is
// always decoded, parsed mode or not, because the download leg needs the
// URL.
type MediaInfo struct {
	Raw json.RawMessage `json:"-"`

	ID               string `json:"id"`
	URL              string `json:"url"`
	MimeType         string `json:"mime_type"`
	SHA256           string `json:"sha256"`
	FileSize         int64  `json:"file_size"`
	MessagingProduct string `json:"messaging_product"`
}

// QRCode is one message QR resource.
type QRCode struct {
	Code             string `json:"code"`
	PrefilledMessage string `json:"prefilled_message"`
	DeepLinkURL      string `json:"deep_link_url"`
	QRImageURL       string `json:"qr_image_url,omitempty"`
}

// QRResponse is the API's reply to QR creation and update.
type QRResponse struct {
	Raw json.RawMessage `json:"-"`

	QRCode
}

// QRListResponse is the API's reply to QR retrieval.
type QRListResponse struct {
	Raw json.RawMessage `json:"-"`

	Data []QRCode `json:"data,omitempty"`
}

// Decode unmarshals a raw response body into v, for callers running with
// parsing disabled.
func Decode(raw json.RawMessage, v any) error {
	return json.Unmarshal(raw, v)
}
