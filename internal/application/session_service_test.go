package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tomlrepo "github.com/bnema/tekoai-cli/internal/adapters/repo/toml"
	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/bnema/tekoai-cli/internal/ports/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionServiceSignInSavesSession(t *testing.T) {
	accounts := mocks.NewMockAccounts(t)
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewSessionService(accounts, store, mocks.NewMockBotDirectory(t), clock)

	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	accounts.EXPECT().Login(mockAnyContext(), "ops@example.com", "secret").Return(domain.Session{UserID: "42", Username: "ops", Plan: domain.PlanPersonal}, nil)
	clock.EXPECT().Now().Return(now)
	store.EXPECT().Get(mockAnyContext()).Return(domain.Session{}, domain.ErrSessionNotFound)
	store.EXPECT().Save(mockAnyContext(), domain.Session{
		UserID:     "42",
		Username:   "ops",
		Email:      "ops@example.com",
		Plan:       domain.PlanPersonal,
		SignedInAt: now,
	}).Return(nil)

	session, err := service.SignIn(context.Background(), SignInCommand{Email: " ops@example.com ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("42"), session.UserID)
}

func TestSessionServiceSignInKeepsDefaultBotForSameUser(t *testing.T) {
	accounts := mocks.NewMockAccounts(t)
	store := mocks.NewMockSessionStore(t)
	clock := mocks.NewMockClock(t)
	service := NewSessionService(accounts, store, mocks.NewMockBotDirectory(t), clock)

	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	accounts.EXPECT().Login(mockAnyContext(), "ops@example.com", "secret").Return(domain.Session{UserID: "42", Email: "ops@example.com"}, nil)
	clock.EXPECT().Now().Return(now)
	store.EXPECT().Get(mockAnyContext()).Return(domain.Session{UserID: "42", DefaultBotID: "12"}, nil)
	store.EXPECT().Save(mockAnyContext(), mock.MatchedBy(func(session domain.Session) bool {
		return session.DefaultBotID == "12" && session.SignedInAt.Equal(now)
	})).Return(nil)

	_, err := service.SignIn(context.Background(), SignInCommand{Email: "ops@example.com", Password: "secret"})
	require.NoError(t, err)
}

func TestSessionServiceSignInRejectsInvalidInput(t *testing.T) {
	service := NewSessionService(mocks.NewMockAccounts(t), mocks.NewMockSessionStore(t), mocks.NewMockBotDirectory(t), nil)

	_, err := service.SignIn(context.Background(), SignInCommand{Email: "not-an-email", Password: "secret"})
	require.ErrorIs(t, err, ErrInvalidEmail)

	_, err = service.SignIn(context.Background(), SignInCommand{Email: "ops@example.com"})
	require.ErrorIs(t, err, ErrMissingField)
}

func TestSessionServiceSignInWrapsLoginFailure(t *testing.T) {
	accounts := mocks.NewMockAccounts(t)
	service := NewSessionService(accounts, mocks.NewMockSessionStore(t), mocks.NewMockBotDirectory(t), nil)

	apiErr := &domain.APIError{StatusCode: 401, Message: "Invalid password"}
	accounts.EXPECT().Login(mockAnyContext(), "ops@example.com", "wrong").Return(domain.Session{}, &domain.FetchError{Op: "sign in", Err: apiErr})

	_, err := service.SignIn(context.Background(), SignInCommand{Email: "ops@example.com", Password: "wrong"})
	require.Error(t, err)
	var gotAPIErr *domain.APIError
	require.True(t, errors.As(err, &gotAPIErr))
	assert.Equal(t, "Invalid password", gotAPIErr.Message)
}

func TestSessionServiceSignUpChecksConfirmation(t *testing.T) {
	accounts := mocks.NewMockAccounts(t)
	service := NewSessionService(accounts, mocks.NewMockSessionStore(t), mocks.NewMockBotDirectory(t), nil)

	err := service.SignUp(context.Background(), domain.SignUpRequest{Username: "ops", Email: "ops@example.com", Password: "a", ConfirmPassword: "b"})
	require.ErrorIs(t, err, ErrPasswordMismatch)

	err = service.SignUp(context.Background(), domain.SignUpRequest{Email: "ops@example.com", Password: "a", ConfirmPassword: "a"})
	require.ErrorIs(t, err, ErrMissingField)

	request := domain.SignUpRequest{Username: "ops", Email: "ops@example.com", Password: "a", ConfirmPassword: "a"}
	accounts.EXPECT().SignUp(mockAnyContext(), request).Return(nil).Once()
	require.NoError(t, service.SignUp(context.Background(), domain.SignUpRequest{Username: " ops ", Email: "ops@example.com", Password: "a", ConfirmPassword: "a"}))
}

func TestSessionServiceForgotPassword(t *testing.T) {
	accounts := mocks.NewMockAccounts(t)
	service := NewSessionService(accounts, mocks.NewMockSessionStore(t), mocks.NewMockBotDirectory(t), nil)

	accounts.EXPECT().RequestPasswordReset(mockAnyContext(), "ops@example.com").Return(nil).Once()

	require.NoError(t, service.ForgotPassword(context.Background(), "ops@example.com"))
	require.ErrorIs(t, service.ForgotPassword(context.Background(), ""), ErrMissingField)
}

func TestSessionServiceSelectBotRequiresMembership(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	bots := mocks.NewMockBotDirectory(t)
	service := NewSessionService(mocks.NewMockAccounts(t), store, bots, nil)

	session := domain.Session{UserID: "42"}
	store.EXPECT().Get(mockAnyContext()).Return(session, nil)
	bots.EXPECT().ListBots(mockAnyContext(), domain.UserID("42")).Return([]domain.Bot{{ID: "12", Name: "Sales"}}, nil)

	_, err := service.SelectBot(context.Background(), "99")
	require.ErrorIs(t, err, domain.ErrBotNotFound)

	store.EXPECT().Save(mockAnyContext(), domain.Session{UserID: "42", DefaultBotID: "12"}).Return(nil).Once()

	bot, err := service.SelectBot(context.Background(), "12")
	require.NoError(t, err)
	assert.Equal(t, "Sales", bot.Name)
}

func TestSessionServiceCurrentReturnsNotFoundUnwrapped(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	service := NewSessionService(mocks.NewMockAccounts(t), store, mocks.NewMockBotDirectory(t), nil)

	store.EXPECT().Get(mockAnyContext()).Return(domain.Session{}, domain.ErrSessionNotFound)

	_, err := service.Current(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, domain.ErrSessionNotFound.Error(), err.Error())
}

func TestSessionServiceProfileToleratesBotLookupFailure(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	bots := mocks.NewMockBotDirectory(t)
	service := NewSessionService(mocks.NewMockAccounts(t), store, bots, nil)

	store.EXPECT().Get(mockAnyContext()).Return(domain.Session{UserID: "42", DefaultBotID: "12"}, nil)
	bots.EXPECT().ListBots(mockAnyContext(), domain.UserID("42")).Return(nil, errors.New("offline"))

	profile, err := service.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Bot{ID: "12"}, profile.DefaultBot)
}

func TestSessionServiceWithTOMLSessionStore(t *testing.T) {
	config := viper.New()
	config.Set(tomlrepo.SessionPathKey, filepath.Join(t.TempDir(), "session.toml"))
	store, err := tomlrepo.NewSessionRepository(config)
	require.NoError(t, err)

	accounts := mocks.NewMockAccounts(t)
	bots := mocks.NewMockBotDirectory(t)
	service := NewSessionService(accounts, store, bots, nil)

	accounts.EXPECT().Login(mockAnyContext(), "ops@example.com", "secret").Return(domain.Session{UserID: "42", Username: "ops"}, nil)
	bots.EXPECT().ListBots(mockAnyContext(), domain.UserID("42")).Return([]domain.Bot{{ID: "12", Name: "Sales"}}, nil)

	_, err = service.SignIn(context.Background(), SignInCommand{Email: "ops@example.com", Password: "secret"})
	require.NoError(t, err)

	_, err = service.SelectBot(context.Background(), "12")
	require.NoError(t, err)

	profile, err := service.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sales", profile.DefaultBot.Name)
	assert.Equal(t, "ops@example.com", profile.Session.Email)

	require.NoError(t, service.SignOut(context.Background()))
	_, err = service.Current(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func mockAnyContext() interface{} {
	return mock.Anything
}
