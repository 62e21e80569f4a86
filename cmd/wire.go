package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/bnema/tekoai-cli/internal/adapters/chatbotapi"
	chainnotify "github.com/bnema/tekoai-cli/internal/adapters/notify/chain"
	"github.com/bnema/tekoai-cli/internal/adapters/notify/desktop"
	"github.com/bnema/tekoai-cli/internal/adapters/notify/off"
	"github.com/bnema/tekoai-cli/internal/adapters/notify/terminal"
	"github.com/bnema/tekoai-cli/internal/adapters/render/screen"
	tomlrepo "github.com/bnema/tekoai-cli/internal/adapters/repo/toml"
	"github.com/bnema/tekoai-cli/internal/application"
	"github.com/bnema/tekoai-cli/internal/ports"
	"go.uber.org/zap"
)

type app struct {
	config    config
	logLevel  zap.AtomicLevel
	logger    *zap.Logger
	store     ports.SessionStore
	resolver  *application.BotResolver
	source    ports.ConversationSource
	sessions  *application.SessionService
	chats     *application.ChatService
	documents *application.DocumentService
	dashboard *application.DashboardService
	render    func(screen.Page, screen.RenderOptions) (string, error)
	now       func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	store, err := tomlrepo.NewSessionRepository(cfg.values)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	client := chatbotapi.Client{
		BaseURL:        cfg.APIBaseURL,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.HTTPTimeout,
	}
	clock := ports.SystemClock{}
	resolver := application.NewBotResolver(client)
	logLevel := zap.NewAtomicLevelAt(zap.WarnLevel)

	return &app{
		config:    cfg,
		logLevel:  logLevel,
		logger:    newLogger(os.Stderr, logLevel),
		store:     store,
		resolver:  resolver,
		source:    client,
		sessions:  application.NewSessionService(client, store, client, clock),
		chats:     application.NewChatService(store, resolver, client, client, client, clock),
		documents: application.NewDocumentService(store, resolver, client, cfg.DocumentsBaseURL),
		dashboard: application.NewDashboardService(store, client, client),
		render:    screen.Render,
		now:       time.Now,
	}, nil
}

// newMonitor builds a monitor whose terminal notifications, if any, go to out.
func (a *app) newMonitor(out io.Writer, opts ...application.MonitorOption) (*application.Monitor, error) {
	notifier, err := a.newNotifier(out)
	if err != nil {
		return nil, err
	}

	opts = append([]application.MonitorOption{
		application.WithPollInterval(a.config.WatchInterval),
		application.WithLogger(a.logger.Named("monitor")),
	}, opts...)

	return application.NewMonitor(a.store, a.resolver, a.source, notifier, opts...), nil
}

func (a *app) newNotifier(out io.Writer) (ports.Notifier, error) {
	switch a.config.NotifyMode {
	case notifyDesktop:
		return desktop.NewNotifier(), nil
	case notifyTerminal:
		return terminal.NewNotifier(out, true), nil
	case notifyNone:
		return off.Notifier{}, nil
	default:
		notifier, err := chainnotify.NewDesktopFirstWithTerminalFallback(out)
		if err != nil {
			return nil, fmt.Errorf("wire notifier chain: %w", err)
		}
		return notifier, nil
	}
}
