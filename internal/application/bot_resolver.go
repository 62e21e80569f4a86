package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/bnema/tekoai-cli/internal/ports"
)

// BotResolver picks the bot to act on when the caller did not name one.
type BotResolver struct {
	bots ports.BotDirectory
}

func NewBotResolver(bots ports.BotDirectory) *BotResolver {
	return &BotResolver{bots: bots}
}

// Resolve returns the session's default bot, else the first bot of the user's list.
func (r *BotResolver) Resolve(ctx context.Context, session domain.Session) (domain.BotID, error) {
	if session.DefaultBotID != "" {
		return session.DefaultBotID, nil
	}

	bots, err := r.bots.ListBots(ctx, session.UserID)
	if err != nil {
		return "", fmt.Errorf("list bots: %w", err)
	}
	if len(bots) == 0 {
		return "", domain.ErrUnresolvedBot
	}

	return bots[0].ID, nil
}

// ResolveBot is Resolve with an explicit override that also looks up the bot's name. A failed
// name lookup is tolerated when the id is already known.
func (r *BotResolver) ResolveBot(ctx context.Context, session domain.Session, explicit domain.BotID) (domain.Bot, error) {
	id := domain.BotID(strings.TrimSpace(string(explicit)))
	if id == "" {
		id = session.DefaultBotID
	}

	bots, err := r.bots.ListBots(ctx, session.UserID)
	if err != nil {
		if id != "" {
			return domain.Bot{ID: id}, nil
		}
		return domain.Bot{}, fmt.Errorf("list bots: %w", err)
	}

	if id != "" {
		if bot, ok := domain.FindBot(bots, id); ok {
			return bot, nil
		}
		return domain.Bot{ID: id}, nil
	}

	if len(bots) == 0 {
		return domain.Bot{}, domain.ErrUnresolvedBot
	}

	return bots[0], nil
}

func resolveSessionBot(ctx context.Context, store ports.SessionStore, resolver *BotResolver, explicit domain.BotID) (domain.Bot, error) {
	session, err := currentSession(ctx, store)
	if err != nil {
		return domain.Bot{}, err
	}

	bot, err := resolver.ResolveBot(ctx, session, explicit)
	if err != nil {
		return domain.Bot{}, fmt.Errorf("resolve bot: %w", err)
	}

	return bot, nil
}
