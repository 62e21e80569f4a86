package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/tekoai-cli/internal/adapters/chatbotapi"
	"github.com/bnema/tekoai-cli/internal/application"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configAPIBaseURL       = "api.base_url"
	configDocumentsBaseURL = "documents.base_url"
	configWatchInterval    = "watch.interval"
	configNotifyMode       = "notify.mode"
	configHTTPTimeout      = "http.timeout"

	envPrefix = "TK"
)

type notifyMode string

const (
	notifyAuto     notifyMode = "auto"
	notifyDesktop  notifyMode = "desktop"
	notifyTerminal notifyMode = "terminal"
	notifyNone     notifyMode = "none"
)

type config struct {
	APIBaseURL       string
	DocumentsBaseURL string
	WatchInterval    time.Duration
	NotifyMode       notifyMode
	HTTPTimeout      time.Duration
	values           *viper.Viper
}

// loadConfig reads ./.env, then ~/.tekoai/config.toml, then TK_* environment variables.
func loadConfig() (config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault(configAPIBaseURL, chatbotapi.DefaultBaseURL)
	v.SetDefault(configDocumentsBaseURL, application.DefaultDocumentBaseURL)
	v.SetDefault(configWatchInterval, application.DefaultPollInterval)
	v.SetDefault(configNotifyMode, string(notifyAuto))
	v.SetDefault(configHTTPTimeout, 30*time.Second)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	v.SetConfigFile(filepath.Join(homeDir, ".tekoai", "config.toml"))
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("read config: %w", err)
	}

	mode := notifyMode(strings.ToLower(strings.TrimSpace(v.GetString(configNotifyMode))))
	switch mode {
	case notifyAuto, notifyDesktop, notifyTerminal, notifyNone:
	default:
		return config{}, fmt.Errorf("unsupported %s %q (expected auto, desktop, terminal or none)", configNotifyMode, mode)
	}

	return config{
		APIBaseURL:       v.GetString(configAPIBaseURL),
		DocumentsBaseURL: v.GetString(configDocumentsBaseURL),
		WatchInterval:    v.GetDuration(configWatchInterval),
		NotifyMode:       mode,
		HTTPTimeout:      v.GetDuration(configHTTPTimeout),
		values:           v,
	}, nil
}
