package entity

import "time"

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single utterance inside a conversation. Immutable once appended.
type Message struct {
	Sender Sender    `json:"sender" bson:"sender" validate:"required,oneof=user bot"`
	Text   string    `json:"text" bson:"text" validate:"required,min=1"`
	Time   time.Time `json:"time" bson:"time" validate:"required"`
}

// Conversation is embedded in its owning user and has no identity of its own.
// Messages only ever grow at the end.
type Conversation struct {
	UserID   *int64    `json:"user_id" bson:"user_id"` // Owner reference by value; sign is not checked.
	Messages []Message `json:"messages" bson:"messages" validate:"dive"`
}

// NewConversation returns a copy of c with defaults materialized.
func NewConversation(c *Conversation) *Conversation {
	out := *c
	out.normalize()

	return &out
}

func (c *Conversation) normalize() {
	if c.Messages == nil {
		c.Messages = []Message{}
	}
}
