package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/tekoai-cli/internal/domain"
)

var ErrUnsupportedSort = errors.New("unsupported sort order")

type SortOrder string

const (
	SortNone SortOrder = ""
	SortName SortOrder = "name"
	SortTime SortOrder = "time"
)

func ParseSortOrder(raw string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(raw)))
	switch order {
	case SortNone, SortName, SortTime:
		return order, nil
	default:
		return SortNone, fmt.Errorf("%w %q (expected name or time)", ErrUnsupportedSort, raw)
	}
}

type ListChatsQuery struct {
	BotID  domain.BotID
	Search string
	Sort   SortOrder
}

type ChatList struct {
	Bot   domain.Bot
	Chats []domain.ChatSummary
}

type ListDocumentsQuery struct {
	BotID  domain.BotID
	Search string
	Sort   SortOrder
}

type DocumentList struct {
	Bot       domain.Bot
	Documents []domain.Document
}

type Dashboard struct {
	Session  domain.Session
	Bots     []domain.Bot
	Selected domain.Bot
	Counts   domain.BotCounts
}

type Profile struct {
	Session    domain.Session
	DefaultBot domain.Bot
}
