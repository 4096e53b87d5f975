// Package client implements the WhatsApp Cloud API facade: it validates
// arguments, wraps messages into the wire envelope and performs the
// authenticated Graph API calls through an injected transport.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tinyland-inc/wagraph/pkg/messages"
	"github.com/tinyland-inc/wagraph/pkg/transport"
)

const (
	defaultBaseURL    = "https://graph.facebook.com"
	defaultAPIVersion = "v23.0"
)

// SentMessage is handed to the registered send observer after every
// successful send. MessageID is empty when response parsing is disabled.
type SentMessage struct {
	EventID   string
	BotID     string
	Recipient string
	Message   messages.Message
	Envelope  *Envelope
	MessageID string
	Response  *SendResponse
}

// SendObserver observes successful sends. A panicking observer is
// recovered and logged; it never changes the result of the send.
type SendObserver func(SentMessage)

// Client is the API entry point. It holds no per-call state; concurrent
// use is safe.
type Client struct {
	token   string
	version string
	baseURL string
	parsed  bool
	doer    transport.Doer
	log     zerolog.Logger

	mu       sync.RWMutex
	observer SendObserver
}

// Option configures a Client.
type Option func(*Client)

// WithAPIVersion overrides the Graph API version segment (e.g. "v23.0").
func WithAPIVersion(version string) Option {
	return func(c *Client) { c.version = version }
}

// WithBaseURL overrides the Graph API origin, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient injects the transport capability performing HTTP I/O.
func WithHTTPClient(doer transport.Doer) Option {
	return func(c *Client) { c.doer = doer }
}

// WithParsedResponses makes every operation decode the response body into
// its typed fields. The policy is client-wide, not per call.
func WithParsedResponses() Option {
	return func(c *Client) { c.parsed = true }
}

// WithLogger attaches a logger for transport diagnostics and observer
// panic reports.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New builds a Client for the given bearer token.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, requiredArg("token")
	}
	c := &Client{
		token:   token,
		version: defaultAPIVersion,
		baseURL: defaultBaseURL,
		doer:    transport.NewHTTPClient(0),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// LogSentMessages registers the send observer. At most one observer is
// held; re-registration replaces the previous one.
func (c *Client) LogSentMessages(observer SendObserver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observer = observer
}

// SendMessage wraps msg into the wire envelope and posts it to the
// messages endpoint of the given bot (phone number id). replyTo, when
// non-empty, marks the message as a reply to that message id.
func (c *Client) SendMessage(ctx context.Context, botID, to string, msg messages.Message, replyTo string) (*SendResponse, error) {
	if botID == "" {
		return nil, requiredArg("bot id")
	}
	env, err := BuildEnvelope(msg, to, replyTo)
	if err != nil {
		return nil, err
	}

	data, err := c.request(ctx, http.MethodPost, botID+"/messages", nil, env)
	if err != nil {
		return nil, err
	}

	res := &SendResponse{Raw: data}
	if c.parsed {
		if err := json.Unmarshal(data, res); err != nil {
			return nil, fmt.Errorf("decoding send response: %w", err)
		}
	}
	c.notifySent(botID, to, msg, env, res)
	return res, nil
}

// MarkAsRead posts a read receipt for the given message id.
func (c *Client) MarkAsRead(ctx context.Context, botID, messageID string) (*StatusResponse, error) {
	if botID == "" {
		return nil, requiredArg("bot id")
	}
	if messageID == "" {
		return nil, requiredArg("message id")
	}

	receipt := struct {
		MessagingProduct string `json:"messaging_product"`
		Status           string `json:"status"`
		MessageID        string `json:"message_id"`
	}{
		MessagingProduct: MessagingProduct,
		Status:           "read",
		MessageID:        messageID,
	}

	data, err := c.request(ctx, http.MethodPost, botID+"/messages", nil, receipt)
	if err != nil {
		return nil, err
	}
	res := &StatusResponse{Raw: data}
	if c.parsed {
		if err := json.Unmarshal(data, res); err != nil {
			return nil, fmt.Errorf("decoding read receipt response: %w", err)
		}
	}
	return res, nil
}

func (c *Client) notifySent(botID, to string, msg messages.Message, env *Envelope, res *SendResponse) {
	c.mu.RLock()
	observer := c.observer
	c.mu.RUnlock()
	if observer == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			c.log.Error().
				Str("bot_id", botID).
				Str("recipient", to).
				Any("panic", r).
				Msg("send observer panicked")
		}
	}()

	observer(SentMessage{
		EventID:   uuid.NewString(),
		BotID:     botID,
		Recipient: to,
		Message:   msg,
		Envelope:  env,
		MessageID: res.MessageID(),
		Response:  res,
	})
}

// request performs one authenticated call against the versioned API and
// returns the response body. Non-2xx replies become an *APIError;
// transport errors pass through unchanged.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + "/" + c.version + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: data}
	}
	return data, nil
}
