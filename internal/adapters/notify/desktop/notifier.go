package desktop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/bnema/tekoai-cli/internal/ports"
)

const notifySendCommand = "notify-send"

var ErrUnavailable = errors.New("notify-send command unavailable")

type runFunc func(ctx context.Context, args ...string) (stderr string, err error)

type lookPathFunc func(file string) (string, error)

// Notifier shows desktop notifications through notify-send.
type Notifier struct {
	AppName string

	run      runFunc
	lookPath lookPathFunc
	getenv   func(string) string
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier() *Notifier {
	return &Notifier{
		AppName:  "tk",
		run:      runNotifySend,
		lookPath: exec.LookPath,
		getenv:   os.Getenv,
	}
}

func (n *Notifier) RequestPermission(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if n.getenv("DISPLAY") == "" && n.getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("%w: no graphical session", domain.ErrPermissionDenied)
	}

	if _, err := n.lookPath(notifySendCommand); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPermissionDenied, ErrUnavailable)
	}

	return nil
}

func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	args := []string{"--app-name=" + n.appName(), title, body}
	stderr, err := n.run(ctx, args...)
	if err != nil {
		return formatError(err, stderr)
	}

	return nil
}

func (n *Notifier) appName() string {
	if strings.TrimSpace(n.AppName) == "" {
		return "tk"
	}
	return n.AppName
}

func runNotifySend(ctx context.Context, args ...string) (string, error) {
	path, err := exec.LookPath(notifySendCommand)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrUnavailable
		}
		return "", fmt.Errorf("locate notify-send command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

func formatError(err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("notify-send: %w", err)
	}

	return fmt.Errorf("notify-send: %w: %s", err, stderr)
}
