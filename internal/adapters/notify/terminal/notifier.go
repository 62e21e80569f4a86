package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/tekoai-cli/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

// Notifier prints notifications inline on a terminal stream.
type Notifier struct {
	out  io.Writer
	bell bool

	mu     sync.Mutex
	title  lipgloss.Style
	detail lipgloss.Style
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(out io.Writer, bell bool) *Notifier {
	return &Notifier{
		out:    out,
		bell:   bell,
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (n *Notifier) RequestPermission(ctx context.Context) error {
	return ctx.Err()
}

func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	line := n.title.Render("● "+title) + "  " + n.detail.Render(body)
	if n.bell {
		line = "\a" + line
	}

	if _, err := fmt.Fprintln(n.out, line); err != nil {
		return fmt.Errorf("write terminal notification: %w", err)
	}

	return nil
}
