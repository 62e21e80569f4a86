package domain

import (
	"strings"
	"time"
)

type UserID string

type Session struct {
	UserID       UserID
	Username     string
	Email        string
	Plan         Plan
	DefaultBotID BotID
	SignedInAt   time.Time
}

func (s Session) IsZero() bool {
	return strings.TrimSpace(string(s.UserID)) == ""
}

// WithDefaultBot returns a copy of the session remembering botID as the default bot.
func (s Session) WithDefaultBot(botID BotID) Session {
	s.DefaultBotID = botID
	return s
}

type SignUpRequest struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}
