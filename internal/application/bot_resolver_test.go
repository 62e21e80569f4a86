package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/bnema/tekoai-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotResolverPrefersSessionDefaultWithoutListing(t *testing.T) {
	resolver := NewBotResolver(mocks.NewMockBotDirectory(t))

	botID, err := resolver.Resolve(context.Background(), domain.Session{UserID: "42", DefaultBotID: "12"})
	require.NoError(t, err)
	assert.Equal(t, domain.BotID("12"), botID)
}

func TestBotResolverFallsBackToFirstBot(t *testing.T) {
	bots := mocks.NewMockBotDirectory(t)
	resolver := NewBotResolver(bots)

	bots.EXPECT().ListBots(mockAnyContext(), domain.UserID("42")).Return([]domain.Bot{{ID: "21"}, {ID: "22"}}, nil).Once()

	botID, err := resolver.Resolve(context.Background(), domain.Session{UserID: "42"})
	require.NoError(t, err)
	assert.Equal(t, domain.BotID("21"), botID)
}

func TestBotResolverEmptyListIsUnresolved(t *testing.T) {
	bots := mocks.NewMockBotDirectory(t)
	resolver := NewBotResolver(bots)

	bots.EXPECT().ListBots(mockAnyContext(), domain.UserID("42")).Return([]domain.Bot{}, nil).Once()

	_, err := resolver.Resolve(context.Background(), domain.Session{UserID: "42"})
	require.ErrorIs(t, err, domain.ErrUnresolvedBot)
}

func TestBotResolverResolveBotToleratesListFailureForKnownID(t *testing.T) {
	bots := mocks.NewMockBotDirectory(t)
	resolver := NewBotResolver(bots)

	bots.EXPECT().ListBots(mockAnyContext(), domain.UserID("42")).Return(nil, errors.New("offline"))

	bot, err := resolver.ResolveBot(context.Background(), domain.Session{UserID: "42"}, "13")
	require.NoError(t, err)
	assert.Equal(t, domain.Bot{ID: "13"}, bot)

	_, err = resolver.ResolveBot(context.Background(), domain.Session{UserID: "42"}, "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "offline")
}
