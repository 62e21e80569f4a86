package application

import (
	"context"
	"fmt"

	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/bnema/tekoai-cli/internal/ports"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	sessions  ports.SessionStore
	bots      ports.BotDirectory
	analytics ports.Analytics
}

func NewDashboardService(sessions ports.SessionStore, bots ports.BotDirectory, analytics ports.Analytics) *DashboardService {
	return &DashboardService{sessions: sessions, bots: bots, analytics: analytics}
}

// Load fetches the bot list and the selected bot's three counters concurrently.
func (s *DashboardService) Load(ctx context.Context, explicit domain.BotID) (Dashboard, error) {
	session, err := currentSession(ctx, s.sessions)
	if err != nil {
		return Dashboard{}, err
	}

	bots, err := s.bots.ListBots(ctx, session.UserID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list bots: %w", err)
	}

	dashboard := Dashboard{Session: session, Bots: bots}
	selected, ok := selectDashboardBot(bots, explicit, session.DefaultBotID)
	if !ok {
		if explicit != "" {
			return Dashboard{}, fmt.Errorf("%w: %s", domain.ErrBotNotFound, explicit)
		}
		return dashboard, nil
	}
	dashboard.Selected = selected

	var counts domain.BotCounts
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		value, err := s.analytics.MessageCount(groupCtx, selected.ID)
		if err != nil {
			return fmt.Errorf("message count: %w", err)
		}
		counts.Messages = value
		return nil
	})
	group.Go(func() error {
		value, err := s.analytics.GuestCount(groupCtx, selected.ID)
		if err != nil {
			return fmt.Errorf("guest count: %w", err)
		}
		counts.Guests = value
		return nil
	})
	group.Go(func() error {
		value, err := s.analytics.ManualResponseCount(groupCtx, selected.ID)
		if err != nil {
			return fmt.Errorf("manual response count: %w", err)
		}
		counts.ManualResponses = value
		return nil
	})

	if err := group.Wait(); err != nil {
		return Dashboard{}, err
	}
	dashboard.Counts = counts

	return dashboard, nil
}

func selectDashboardBot(bots []domain.Bot, explicit domain.BotID, fallback domain.BotID) (domain.Bot, bool) {
	if explicit != "" {
		return domain.FindBot(bots, explicit)
	}
	if fallback != "" {
		if bot, ok := domain.FindBot(bots, fallback); ok {
			return bot, true
		}
	}
	if len(bots) == 0 {
		return domain.Bot{}, false
	}

	return bots[0], true
}
