package client

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/tinyland-inc/wagraph/pkg/messages"
)

func mustText(t *testing.T, body string) *messages.Text {
	t.Helper()
	msg, err := messages.NewText(body)
	if err != nil {
		t.Fatalf("NewText() error: %v", err)
	}
	return msg
}

func marshalEnvelope(t *testing.T, env *Envelope) map[string]json.RawMessage {
	t.Helper()
	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return fields
}

func TestBuildEnvelope_TextExample(t *testing.T) {
	env, err := BuildEnvelope(mustText(t, "hi"), "15551234567", "")
	if err != nil {
		t.Fatalf("BuildEnvelope() error: %v", err)
	}

	fields := marshalEnvelope(t, env)

	var product, msgType, to, text string
	for key, want := range map[string]*string{
		"messaging_product": &product,
		"type":              &msgType,
		"to":                &to,
		"text":              &text,
	} {
		raw, ok := fields[key]
		if !ok {
			t.Fatalf("envelope is missing field %q", key)
		}
		if err := json.Unmarshal(raw, want); err != nil {
			t.Fatalf("field %q is not a JSON string: %v", key, err)
		}
	}

	if product != "whatsapp" {
		t.Errorf("messaging_product = %q, want %q", product, "whatsapp")
	}
	if msgType != "text" {
		t.Errorf("type = %q, want %q", msgType, "text")
	}
	if to != "15551234567" {
		t.Errorf("to = %q, want %q", to, "15551234567")
	}
	if text != `{"body":"hi"}` {
		t.Errorf("text = %q, want %q", text, `{"body":"hi"}`)
	}
	if _, ok := fields["context"]; ok {
		t.Errorf("envelope must omit context when no reply id is given")
	}
}

func TestBuildEnvelope_SinglePayloadField(t *testing.T) {
	location, err := messages.NewLocation(48.8584, 2.2945, "Eiffel Tower", "")
	if err != nil {
		t.Fatalf("NewLocation() error: %v", err)
	}
	reaction, err := messages.NewReaction("wamid.ABC", "👍")
	if err != nil {
		t.Fatalf("NewReaction() error: %v", err)
	}
	image, err := messages.NewImage("", "https://example.com/cat.jpg", "cat")
	if err != nil {
		t.Fatalf("NewImage() error: %v", err)
	}

	tests := []struct {
		msg  messages.Message
		want string
	}{
		{location, "location"},
		{reaction, "reaction"},
		{image, "image"},
	}

	known := map[string]bool{"messaging_product": true, "type": true, "to": true, "context": true}
	for _, tt := range tests {
		env, err := BuildEnvelope(tt.msg, "15551234567", "")
		if err != nil {
			t.Fatalf("BuildEnvelope(%s) error: %v", tt.want, err)
		}
		fields := marshalEnvelope(t, env)

		var payloads []string
		for key := range fields {
			if !known[key] {
				payloads = append(payloads, key)
			}
		}
		if len(payloads) != 1 || payloads[0] != tt.want {
			t.Errorf("payload fields = %v, want exactly [%s]", payloads, tt.want)
			continue
		}

		// The payload is a JSON string whose content decodes to an object
		// without the discriminant field.
		var stringified string
		if err := json.Unmarshal(fields[tt.want], &stringified); err != nil {
			t.Fatalf("%s payload is not stringified: %v", tt.want, err)
		}
		var body map[string]any
		if err := json.Unmarshal([]byte(stringified), &body); err != nil {
			t.Fatalf("%s payload content is not an object: %v", tt.want, err)
		}
		if _, ok := body["type"]; ok {
			t.Errorf("%s payload body must not carry the discriminant", tt.want)
		}
	}
}

func TestBuildEnvelope_ContactsSerializeAsArray(t *testing.T) {
	contacts, err := messages.NewContacts(messages.Contact{
		Name:   messages.ContactName{FormattedName: "Ada Lovelace", FirstName: "Ada"},
		Phones: []messages.ContactPhone{{Phone: "+15551234567", Type: "WORK"}},
	})
	if err != nil {
		t.Fatalf("NewContacts() error: %v", err)
	}

	env, err := BuildEnvelope(contacts, "15551234567", "")
	if err != nil {
		t.Fatalf("BuildEnvelope() error: %v", err)
	}
	fields := marshalEnvelope(t, env)

	var stringified string
	if err := json.Unmarshal(fields["contacts"], &stringified); err != nil {
		t.Fatalf("contacts payload is not stringified: %v", err)
	}
	var body []map[string]any
	if err := json.Unmarshal([]byte(stringified), &body); err != nil {
		t.Fatalf("contacts payload content must decode to an array, got error: %v", err)
	}
	if len(body) != 1 {
		t.Fatalf("len(contacts) = %d, want 1", len(body))
	}
}

func TestBuildEnvelope_ReplyContext(t *testing.T) {
	env, err := BuildEnvelope(mustText(t, "hi"), "15551234567", "wamid.REPLY")
	if err != nil {
		t.Fatalf("BuildEnvelope() error: %v", err)
	}
	fields := marshalEnvelope(t, env)

	var ctx struct {
		MessageID string `json:"message_id"`
	}
	raw, ok := fields["context"]
	if !ok {
		t.Fatal("envelope is missing context")
	}
	if err := json.Unmarshal(raw, &ctx); err != nil {
		t.Fatalf("decoding context: %v", err)
	}
	if ctx.MessageID != "wamid.REPLY" {
		t.Errorf("context.message_id = %q, want %q", ctx.MessageID, "wamid.REPLY")
	}
}

func TestBuildEnvelope_DoesNotMutateInput(t *testing.T) {
	msg := mustText(t, "hi")
	before, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := BuildEnvelope(msg, "15551234567", "wamid.REPLY"); err != nil {
		t.Fatalf("BuildEnvelope() error: %v", err)
	}

	after, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("message mutated: before %s, after %s", before, after)
	}
	if msg.MessageType() != "text" {
		t.Errorf("discriminant lost: %q", msg.MessageType())
	}
}

func TestBuildEnvelope_Validation(t *testing.T) {
	tests := []struct {
		name string
		msg  messages.Message
		to   string
	}{
		{"nil message", nil, "15551234567"},
		{"empty recipient", mustText(t, "hi"), ""},
		{"nil payload", (*messages.Text)(nil), "15551234567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildEnvelope(tt.msg, tt.to, "")
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("BuildEnvelope() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}
