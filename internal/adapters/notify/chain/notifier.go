package chain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/tekoai-cli/internal/adapters/notify/desktop"
	"github.com/bnema/tekoai-cli/internal/adapters/notify/terminal"
	"github.com/bnema/tekoai-cli/internal/ports"
)

type Notifier struct {
	primary  ports.Notifier
	fallback ports.Notifier

	mu            sync.Mutex
	primaryActive bool
}

var _ ports.Notifier = (*Notifier)(nil)

var (
	errNilPrimaryNotifier  = errors.New("primary notifier is nil")
	errNilFallbackNotifier = errors.New("fallback notifier is nil")
)

func NewNotifier(primary ports.Notifier, fallback ports.Notifier) *Notifier {
	notifier, err := NewNotifierChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return notifier
}

func NewNotifierChecked(primary ports.Notifier, fallback ports.Notifier) (*Notifier, error) {
	if primary == nil {
		return nil, errNilPrimaryNotifier
	}
	if fallback == nil {
		return nil, errNilFallbackNotifier
	}

	return &Notifier{primary: primary, fallback: fallback, primaryActive: true}, nil
}

// NewDesktopFirstWithTerminalFallback prefers notify-send and prints to out otherwise.
func NewDesktopFirstWithTerminalFallback(out io.Writer) (*Notifier, error) {
	return NewNotifierChecked(desktop.NewNotifier(), terminal.NewNotifier(out, true))
}

// RequestPermission grants through the primary when possible and otherwise through the fallback.
func (n *Notifier) RequestPermission(ctx context.Context) error {
	err := n.primary.RequestPermission(ctx)
	if err == nil {
		n.setUsePrimary(true)
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := n.fallback.RequestPermission(ctx)
	if fallbackErr == nil {
		n.setUsePrimary(false)
		return nil
	}

	return fmt.Errorf("primary notifier denied: %w; fallback notifier denied: %w", err, fallbackErr)
}

func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	if !n.primaryGranted() {
		return n.fallback.Notify(ctx, title, body)
	}

	err := n.primary.Notify(ctx, title, body)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := n.fallback.Notify(ctx, title, body)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary notifier failed: %w; fallback notifier failed: %w", err, fallbackErr)
}

func (n *Notifier) setUsePrimary(value bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.primaryActive = value
}

func (n *Notifier) primaryGranted() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.primaryActive
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
