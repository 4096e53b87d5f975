package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tinyland-inc/wagraph/pkg/messages"
)

// MessagingProduct is the constant the Graph API expects on every
// message body.
const MessagingProduct = "whatsapp"

// ReplyContext references the message a new message is replying to.
type ReplyContext struct {
	MessageID string `json:"message_id"`
}

// Envelope is the outgoing JSON body for one message send. Exactly one
// payload field, named after the message type, carries the variant body
// as a JSON-stringified value.
type Envelope struct {
	Type    string
	To      string
	Context *ReplyContext

	// Payload is the already-quoted JSON string holding the variant body.
	Payload json.RawMessage
}

// BuildEnvelope wraps a message for the given recipient into the wire
// envelope. replyTo, when non-empty, becomes the envelope's reply
// context. The message itself is never mutated.
func BuildEnvelope(msg messages.Message, to, replyTo string) (*Envelope, error) {
	if msg == nil {
		return nil, requiredArg("message")
	}
	msgType := msg.MessageType()
	if msgType == "" {
		return nil, fmt.Errorf("%w: message has an empty type", ErrInvalidArgument)
	}
	if to == "" {
		return nil, requiredArg("recipient")
	}

	// Contacts marshal to a JSON array, every other variant to an
	// object; both stringify the same way.
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s payload: %w", msgType, err)
	}
	if bytes.Equal(body, []byte("null")) {
		return nil, fmt.Errorf("%w: %s payload is empty", ErrInvalidArgument, msgType)
	}
	quoted, err := json.Marshal(string(body))
	if err != nil {
		return nil, fmt.Errorf("quoting %s payload: %w", msgType, err)
	}

	env := &Envelope{Type: msgType, To: to, Payload: quoted}
	if replyTo != "" {
		env.Context = &ReplyContext{MessageID: replyTo}
	}
	return env, nil
}

// MarshalJSON emits the wire form, placing the payload under the dynamic
// key named by the message type.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{
		"messaging_product": mustQuote(MessagingProduct),
		"type":              mustQuote(e.Type),
		"to":                mustQuote(e.To),
	}
	fields[e.Type] = e.Payload
	if e.Context != nil {
		ctx, err := json.Marshal(e.Context)
		if err != nil {
			return nil, err
		}
		fields["context"] = ctx
	}
	return json.Marshal(fields)
}

func mustQuote(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
