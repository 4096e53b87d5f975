package messages

import "fmt"

// Reaction reacts to a previously received message with a single emoji.
// An empty emoji withdraws a previous reaction.
type Reaction struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

// NewReaction builds a reaction to the given message id.
func NewReaction(messageID, emoji string) (*Reaction, error) {
	if messageID == "" {
		return nil, fmt.Errorf("%w: reaction requires a message id", ErrInvalidMessage)
	}
	return &Reaction{MessageID: messageID, Emoji: emoji}, nil
}

func (*Reaction) MessageType() string { return TypeReaction }
