package application

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/bnema/tekoai-cli/internal/ports"
)

var (
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrMissingField     = errors.New("required field is empty")
)

type SessionService struct {
	accounts ports.Accounts
	store    ports.SessionStore
	bots     ports.BotDirectory
	clock    ports.Clock
}

func NewSessionService(accounts ports.Accounts, store ports.SessionStore, bots ports.BotDirectory, clock ports.Clock) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionService{
		accounts: accounts,
		store:    store,
		bots:     bots,
		clock:    clock,
	}
}

func (s *SessionService) SignIn(ctx context.Context, cmd SignInCommand) (domain.Session, error) {
	email, err := normalizeEmail(cmd.Email)
	if err != nil {
		return domain.Session{}, err
	}
	if cmd.Password == "" {
		return domain.Session{}, fmt.Errorf("%w: password", ErrMissingField)
	}

	session, err := s.accounts.Login(ctx, email, cmd.Password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign in: %w", err)
	}
	if session.Email == "" {
		session.Email = email
	}
	session.SignedInAt = s.clock.Now()

	if previous, err := s.store.Get(ctx); err == nil && previous.UserID == session.UserID {
		session.DefaultBotID = previous.DefaultBotID
	}

	if err := s.store.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

func (s *SessionService) SignOut(ctx context.Context) error {
	if err := s.store.Delete(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (s *SessionService) SignUp(ctx context.Context, req domain.SignUpRequest) error {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return err
	}
	req.Email = email
	req.Username = strings.TrimSpace(req.Username)

	if req.Username == "" {
		return fmt.Errorf("%w: username", ErrMissingField)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password", ErrMissingField)
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	if err := s.accounts.SignUp(ctx, req); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}

	return nil
}

func (s *SessionService) ForgotPassword(ctx context.Context, rawEmail string) error {
	email, err := normalizeEmail(rawEmail)
	if err != nil {
		return err
	}

	if err := s.accounts.RequestPasswordReset(ctx, email); err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}

	return nil
}

func (s *SessionService) Current(ctx context.Context) (domain.Session, error) {
	return currentSession(ctx, s.store)
}

func (s *SessionService) Bots(ctx context.Context) ([]domain.Bot, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	bots, err := s.bots.ListBots(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("list bots: %w", err)
	}

	return bots, nil
}

// SelectBot remembers botID as the default bot. The bot must belong to the signed-in user.
func (s *SessionService) SelectBot(ctx context.Context, botID domain.BotID) (domain.Bot, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return domain.Bot{}, err
	}

	bots, err := s.bots.ListBots(ctx, session.UserID)
	if err != nil {
		return domain.Bot{}, fmt.Errorf("list bots: %w", err)
	}

	bot, ok := domain.FindBot(bots, botID)
	if !ok {
		return domain.Bot{}, fmt.Errorf("%w: %s", domain.ErrBotNotFound, botID)
	}

	if err := s.store.Save(ctx, session.WithDefaultBot(bot.ID)); err != nil {
		return domain.Bot{}, fmt.Errorf("save session: %w", err)
	}

	return bot, nil
}

func (s *SessionService) Profile(ctx context.Context) (Profile, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return Profile{}, err
	}

	profile := Profile{Session: session}
	if session.DefaultBotID == "" {
		return profile, nil
	}

	profile.DefaultBot = domain.Bot{ID: session.DefaultBotID}
	if bots, err := s.bots.ListBots(ctx, session.UserID); err == nil {
		if bot, ok := domain.FindBot(bots, session.DefaultBotID); ok {
			profile.DefaultBot = bot
		}
	}

	return profile, nil
}

func currentSession(ctx context.Context, store ports.SessionStore) (domain.Session, error) {
	session, err := store.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.Session{}, err
		}
		return domain.Session{}, fmt.Errorf("read session: %w", err)
	}

	return session, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%w: email", ErrMissingField)
	}

	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}

	return email, nil
}
