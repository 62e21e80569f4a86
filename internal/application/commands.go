package application

import "github.com/bnema/tekoai-cli/internal/domain"

type SignInCommand struct {
	Email    string
	Password string
}

type SendMessageCommand struct {
	GuestID domain.GuestID
	BotID   domain.BotID
	Text    string
}
