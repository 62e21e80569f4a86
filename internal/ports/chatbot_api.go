package ports

import (
	"context"

	"github.com/bnema/tekoai-cli/internal/domain"
)

type BotDirectory interface {
	ListBots(ctx context.Context, userID domain.UserID) ([]domain.Bot, error)
}

type ConversationSource interface {
	GetGuestConversation(ctx context.Context, guestID domain.GuestID, botID domain.BotID) ([]domain.Message, error)
}

type ChatHistory interface {
	ListBotChats(ctx context.Context, botID domain.BotID) ([]domain.ChatSummary, error)
}

type LiveChat interface {
	SendMessage(ctx context.Context, guestID domain.GuestID, text string) error
	RecordMessage(ctx context.Context, record domain.MessageRecord) error
}

type DocumentLibrary interface {
	ListDocuments(ctx context.Context, botID domain.BotID) ([]domain.Document, error)
}

type Analytics interface {
	MessageCount(ctx context.Context, botID domain.BotID) (int64, error)
	GuestCount(ctx context.Context, botID domain.BotID) (int64, error)
	ManualResponseCount(ctx context.Context, botID domain.BotID) (int64, error)
}

type Accounts interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	SignUp(ctx context.Context, req domain.SignUpRequest) error
	RequestPasswordReset(ctx context.Context, email string) error
}
