// Package messages holds the typed message variants accepted by the
// WhatsApp Cloud API. Each variant is a pure data container that knows its
// own wire-format type name; none of them perform network I/O.
package messages

// Message is the union of all sendable message variants. MessageType
// returns the wire-format discriminant ("text", "image", "contacts", ...)
// which the client places at the envelope's type field and uses as the
// payload key. The discriminant is never part of the marshaled body.
type Message interface {
	MessageType() string
}

// Wire-format discriminants.
const (
	TypeText        = "text"
	TypeAudio       = "audio"
	TypeDocument    = "document"
	TypeImage       = "image"
	TypeSticker     = "sticker"
	TypeVideo       = "video"
	TypeLocation    = "location"
	TypeContacts    = "contacts"
	TypeInteractive = "interactive"
	TypeTemplate    = "template"
	TypeReaction    = "reaction"
)
