package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/bnema/tekoai-cli/internal/ports"
)

type ChatService struct {
	sessions ports.SessionStore
	resolver *BotResolver
	history  ports.ChatHistory
	source   ports.ConversationSource
	live     ports.LiveChat
	clock    ports.Clock
}

func NewChatService(sessions ports.SessionStore, resolver *BotResolver, history ports.ChatHistory, source ports.ConversationSource, live ports.LiveChat, clock ports.Clock) *ChatService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ChatService{
		sessions: sessions,
		resolver: resolver,
		history:  history,
		source:   source,
		live:     live,
		clock:    clock,
	}
}

func (s *ChatService) List(ctx context.Context, query ListChatsQuery) (ChatList, error) {
	bot, err := s.resolveBot(ctx, query.BotID)
	if err != nil {
		return ChatList{}, err
	}

	chats, err := s.history.ListBotChats(ctx, bot.ID)
	if err != nil {
		return ChatList{}, fmt.Errorf("list bot chats: %w", err)
	}

	return ChatList{Bot: bot, Chats: sortChats(filterChats(chats, query.Search), query.Sort)}, nil
}

// Open fetches the current transcript between a guest and a bot.
func (s *ChatService) Open(ctx context.Context, guestID domain.GuestID, botID domain.BotID) (domain.Conversation, error) {
	if strings.TrimSpace(string(guestID)) == "" {
		return domain.Conversation{}, fmt.Errorf("%w: guest id", ErrMissingField)
	}

	bot, err := s.resolveBot(ctx, botID)
	if err != nil {
		return domain.Conversation{}, err
	}

	messages, err := s.source.GetGuestConversation(ctx, guestID, bot.ID)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("get guest conversation: %w", err)
	}

	return domain.NewConversation(guestID, bot.ID, messages), nil
}

// Send posts an operator reply to the guest and records it in the transcript of the guest's
// current chat session.
func (s *ChatService) Send(ctx context.Context, cmd SendMessageCommand) (domain.MessageRecord, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return domain.MessageRecord{}, domain.ErrEmptyMessage
	}

	conversation, err := s.Open(ctx, cmd.GuestID, cmd.BotID)
	if err != nil {
		return domain.MessageRecord{}, err
	}

	sessionID, err := conversation.SessionID()
	if err != nil {
		return domain.MessageRecord{}, fmt.Errorf("resolve chat session: %w", err)
	}

	if err := s.live.SendMessage(ctx, cmd.GuestID, text); err != nil {
		return domain.MessageRecord{}, fmt.Errorf("send live message: %w", err)
	}

	record := domain.MessageRecord{
		BotID:        conversation.BotID,
		SessionID:    sessionID,
		ResponseText: text,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.live.RecordMessage(ctx, record); err != nil {
		return domain.MessageRecord{}, fmt.Errorf("record live message: %w", err)
	}

	return record, nil
}

func (s *ChatService) resolveBot(ctx context.Context, explicit domain.BotID) (domain.Bot, error) {
	return resolveSessionBot(ctx, s.sessions, s.resolver, explicit)
}

func filterChats(chats []domain.ChatSummary, search string) []domain.ChatSummary {
	needle := strings.ToLower(strings.TrimSpace(search))
	filtered := make([]domain.ChatSummary, 0, len(chats))
	for _, chat := range chats {
		if needle == "" ||
			strings.Contains(strings.ToLower(chat.GuestDisplayID), needle) ||
			strings.Contains(strings.ToLower(string(chat.GuestID)), needle) {
			filtered = append(filtered, chat)
		}
	}

	return filtered
}

func sortChats(chats []domain.ChatSummary, order SortOrder) []domain.ChatSummary {
	switch order {
	case SortName:
		sort.SliceStable(chats, func(i, j int) bool {
			return strings.ToLower(chats[i].GuestDisplayID) < strings.ToLower(chats[j].GuestDisplayID)
		})
	case SortTime:
		sort.SliceStable(chats, func(i, j int) bool {
			return chats[i].CreatedAt.After(chats[j].CreatedAt)
		})
	}

	return chats
}
