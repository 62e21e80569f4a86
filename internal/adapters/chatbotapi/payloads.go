package chatbotapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/tekoai-cli/internal/domain"
)

// flexID accepts ids encoded either as JSON numbers or strings.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*f = flexID(strings.TrimSpace(value))
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*f = flexID(number.String())
	return nil
}

// flexInt accepts integers encoded either as JSON numbers or numeric strings.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var id flexID
	if err := id.UnmarshalJSON(data); err != nil {
		return err
	}
	if id == "" {
		*f = 0
		return nil
	}

	value, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return err
	}
	*f = flexInt(value)
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseTimestamp(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}

	return time.Time{}
}

type botPayload struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

func (p botPayload) toDomain() domain.Bot {
	return domain.Bot{ID: domain.BotID(p.ID), Name: p.Name}
}

type messagePayload struct {
	ID           flexID `json:"id"`
	Role         string `json:"role"`
	Message      string `json:"message"`
	ResponseText string `json:"response_text"`
	CreateAt     string `json:"create_at"`
	SessionID    flexID `json:"session_id"`
}

func (p messagePayload) toDomain() domain.Message {
	role := domain.RoleAssistant
	text := p.ResponseText
	if strings.EqualFold(strings.TrimSpace(p.Role), string(domain.RoleUser)) {
		role = domain.RoleUser
		text = p.Message
	}

	return domain.Message{
		ID:        string(p.ID),
		Role:      role,
		Text:      text,
		Timestamp: parseTimestamp(p.CreateAt),
		SessionID: string(p.SessionID),
	}
}

type chatSummaryPayload struct {
	ID             flexID `json:"id"`
	BotID          flexID `json:"bot_id"`
	GuestDisplayID string `json:"guest_display_id"`
	Avatar         string `json:"avatar"`
	ResponseText   string `json:"response_text"`
	CreateAt       string `json:"create_at"`
}

func (p chatSummaryPayload) toDomain() domain.ChatSummary {
	return domain.ChatSummary{
		GuestID:        domain.GuestID(p.ID),
		BotID:          domain.BotID(p.BotID),
		GuestDisplayID: p.GuestDisplayID,
		AvatarURL:      p.Avatar,
		LastResponse:   p.ResponseText,
		CreatedAt:      parseTimestamp(p.CreateAt),
	}
}

type documentPayload struct {
	DocumentID flexID `json:"document_id"`
	Name       string `json:"name"`
	UploadTime string `json:"upload_time"`
}

func (p documentPayload) toDomain() domain.Document {
	return domain.Document{
		ID:         string(p.DocumentID),
		Name:       p.Name,
		UploadedAt: parseTimestamp(p.UploadTime),
	}
}

type countPayload struct {
	Count int64 `json:"count"`
}

func (p *countPayload) UnmarshalJSON(data []byte) error {
	var raw struct {
		Count flexInt `json:"count"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Count = int64(raw.Count)
	return nil
}

type userPayload struct {
	ID       flexID  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Plan     flexInt `json:"plan"`
}

func (p userPayload) toDomain() domain.Session {
	return domain.Session{
		UserID:   domain.UserID(p.ID),
		Username: p.Username,
		Email:    p.Email,
		Plan:     domain.Plan(p.Plan),
	}
}

type errorPayload struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Password string `json:"password"`
	Account  string `json:"account"`
	IsEmail  bool   `json:"isEmail"`
}

type signUpRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RePassword string `json:"rePassword"`
	Username   string `json:"username"`
}

type sendMessageRequest struct {
	GuestID string `json:"guestId"`
	Msg     string `json:"msg"`
}

type messageRecordRequest struct {
	BotID        string `json:"bot_id"`
	CreateAt     string `json:"create_at"`
	ResponseText string `json:"response_text"`
	SessionID    string `json:"session_id"`
}
