package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/bnema/tekoai-cli/internal/adapters/render/screen"
	"github.com/bnema/tekoai-cli/internal/application"
	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type watchOptions struct {
	guestID     domain.GuestID
	botID       domain.BotID
	duration    time.Duration
	interactive bool
}

func newChatWatchCmd(app *app) *cobra.Command {
	var guestID string
	var botID string
	var opts watchOptions

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow a guest conversation live and get notified on new messages",
		Long:  "watch prints the current transcript, then polls it and prints every new message as it arrives. A notification is raised each time the conversation grows. With --interactive, every line read from stdin is sent to the guest as a live reply.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.guestID = domain.GuestID(strings.TrimSpace(guestID))
			opts.botID = domain.BotID(strings.TrimSpace(botID))
			return runChatWatch(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&guestID, "guest", "", "Guest ID")
	cmd.Flags().StringVar(&botID, "bot", "", "Bot ID (default: the selected bot, else the first one)")
	cmd.Flags().DurationVar(&opts.duration, "duration", 0, "Stop watching after this long (default: until interrupted)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Send each stdin line to the guest")
	_ = cmd.MarkFlagRequired("guest")

	return cmd
}

func runChatWatch(cmd *cobra.Command, app *app, opts watchOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	if _, err := app.sessions.Current(ctx); err != nil {
		return withSignInHint(err)
	}

	conversation, err := app.chats.Open(ctx, opts.guestID, opts.botID)
	if err != nil {
		return withSignInHint(err)
	}

	out := &syncWriter{out: cmd.OutOrStdout()}
	if err := writePageTo(out, app, screen.TranscriptPage{Conversation: conversation}); err != nil {
		return err
	}

	printer := &livePrinter{app: app, out: out, printed: conversation.Len()}
	monitor, err := app.newMonitor(cmd.ErrOrStderr(), application.WithSnapshotHandler(printer.snapshot))
	if err != nil {
		return err
	}

	handle := monitor.Start(ctx, conversation.GuestID, conversation.BotID, conversation.Len())
	defer func() {
		monitor.Cancel(handle)
		<-handle.Done()
	}()

	app.logger.Debug("watching conversation", zap.String("watch_id", handle.ID))
	if !handle.NotificationsEnabled() {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Notifications unavailable, new messages are still printed.")
	}
	_, _ = fmt.Fprintf(out, "Watching guest %s on bot %s (Ctrl+C to stop)\n", conversation.GuestID, conversation.BotID)

	if opts.interactive {
		return sendReplies(ctx, cmd, app, handle, out)
	}

	<-ctx.Done()
	return nil
}

// sendReplies sends every non-empty stdin line to the watched guest until EOF or ctx ends.
func sendReplies(ctx context.Context, cmd *cobra.Command, app *app, handle *application.WatchHandle, out io.Writer) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read replies: %w", err)
					}
				default:
				}
				return nil
			}

			record, err := app.chats.Send(ctx, application.SendMessageCommand{
				GuestID: handle.GuestID(),
				BotID:   handle.BotID(),
				Text:    line,
			})
			switch {
			case errors.Is(err, domain.ErrEmptyMessage):
				continue
			case err != nil:
				if ctx.Err() != nil {
					return nil
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "reply not sent: %v\n", err)
			default:
				_, _ = fmt.Fprintf(out, "Sent at %s\n", record.CreatedAt.Local().Format("15:04:05"))
			}
		}
	}
}

// livePrinter prints the messages each snapshot adds beyond what was already printed.
type livePrinter struct {
	app *app
	out io.Writer

	mu      sync.Mutex
	printed int
}

func (p *livePrinter) snapshot(_ *application.WatchHandle, conversation domain.Conversation) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fresh := conversation.Since(p.printed)
	if len(fresh) == 0 {
		return
	}
	p.printed = conversation.Len()

	if err := writePageTo(p.out, p.app, screen.MessagesPage{Messages: fresh}); err != nil {
		p.app.logger.Warn("print new messages", zap.Error(err))
	}
}

type syncWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}
