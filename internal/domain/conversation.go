package domain

import (
	"strings"
	"time"
)

type GuestID string

type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

type Message struct {
	ID        string
	Role      Role
	Text      string
	Timestamp time.Time
	SessionID string
}

// Conversation is one immutable snapshot of a guest/bot transcript.
type Conversation struct {
	GuestID  GuestID
	BotID    BotID
	Messages []Message
}

func NewConversation(guestID GuestID, botID BotID, messages []Message) Conversation {
	copied := make([]Message, len(messages))
	copy(copied, messages)

	return Conversation{GuestID: guestID, BotID: botID, Messages: copied}
}

func (c Conversation) Len() int {
	return len(c.Messages)
}

// SessionID returns the chat session id carried by the first message.
func (c Conversation) SessionID() (string, error) {
	if len(c.Messages) == 0 {
		return "", ErrEmptyConversation
	}

	return c.Messages[0].SessionID, nil
}

// Since returns the messages appended after the first n.
func (c Conversation) Since(n int) []Message {
	if n < 0 {
		n = 0
	}
	if n >= len(c.Messages) {
		return nil
	}

	return c.Messages[n:]
}

type ChatSummary struct {
	GuestID        GuestID
	BotID          BotID
	GuestDisplayID string
	AvatarURL      string
	LastResponse   string
	CreatedAt      time.Time
}

// PNGAvatarURL rewrites the avatar service's svg endpoint to its png variant.
func (c ChatSummary) PNGAvatarURL() string {
	return strings.Replace(c.AvatarURL, "/svg?", "/png?", 1)
}

type MessageRecord struct {
	BotID        BotID
	SessionID    string
	ResponseText string
	CreatedAt    time.Time
}
