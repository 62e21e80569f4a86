package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tekoai-cli/internal/adapters/render/screen"
	"github.com/bnema/tekoai-cli/internal/application"
	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Read, answer and watch guest conversations",
	}

	cmd.AddCommand(
		newChatListCmd(app),
		newChatShowCmd(app),
		newChatSendCmd(app),
		newChatWatchCmd(app),
	)

	return cmd
}

func newChatListCmd(app *app) *cobra.Command {
	var botID string
	var search string
	var sortOrder string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the guests who chatted with a bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := application.ParseSortOrder(sortOrder)
			if err != nil {
				return err
			}

			list, err := app.chats.List(cmd.Context(), application.ListChatsQuery{
				BotID:  domain.BotID(botID),
				Search: search,
				Sort:   order,
			})
			if err != nil {
				return withSignInHint(err)
			}

			if asJSON {
				return writeJSON(cmd, list)
			}
			return writePage(cmd, app, screen.ChatListPage{Bot: list.Bot, Chats: list.Chats})
		},
	}

	cmd.Flags().StringVar(&botID, "bot", "", "Bot ID (default: the selected bot, else the first one)")
	cmd.Flags().StringVar(&search, "search", "", "Only show guests whose id contains this text")
	cmd.Flags().StringVar(&sortOrder, "sort", "", "Sort order (name|time)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

type transcriptExport struct {
	GuestID  string          `json:"guest_id" yaml:"guest_id"`
	BotID    string          `json:"bot_id" yaml:"bot_id"`
	Messages []messageExport `json:"messages" yaml:"messages"`
}

type messageExport struct {
	ID        string    `json:"id" yaml:"id"`
	Role      string    `json:"role" yaml:"role"`
	Text      string    `json:"text" yaml:"text"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	SessionID string    `json:"session_id,omitempty" yaml:"session_id,omitempty"`
}

func newTranscriptExport(conversation domain.Conversation) transcriptExport {
	export := transcriptExport{
		GuestID:  string(conversation.GuestID),
		BotID:    string(conversation.BotID),
		Messages: make([]messageExport, 0, conversation.Len()),
	}
	for _, message := range conversation.Messages {
		export.Messages = append(export.Messages, messageExport{
			ID:        message.ID,
			Role:      string(message.Role),
			Text:      message.Text,
			Timestamp: message.Timestamp,
			SessionID: message.SessionID,
		})
	}

	return export
}

func newChatShowCmd(app *app) *cobra.Command {
	var guestID string
	var botID string
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the transcript of a guest conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := strings.ToLower(strings.TrimSpace(output))
			switch format {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unsupported output %q (expected text, json or yaml)", output)
			}

			conversation, err := app.chats.Open(cmd.Context(), domain.GuestID(guestID), domain.BotID(botID))
			if err != nil {
				return withSignInHint(err)
			}

			switch format {
			case "json":
				return writeJSON(cmd, newTranscriptExport(conversation))
			case "yaml":
				return writeYAML(cmd, newTranscriptExport(conversation))
			default:
				return writePage(cmd, app, screen.TranscriptPage{Conversation: conversation})
			}
		},
	}

	cmd.Flags().StringVar(&guestID, "guest", "", "Guest ID")
	cmd.Flags().StringVar(&botID, "bot", "", "Bot ID (default: the selected bot, else the first one)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|json|yaml)")
	_ = cmd.MarkFlagRequired("guest")

	return cmd
}

func newChatSendCmd(app *app) *cobra.Command {
	var guestID string
	var botID string

	cmd := &cobra.Command{
		Use:   "send <text>",
		Short: "Answer a guest as a live operator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := app.chats.Send(cmd.Context(), application.SendMessageCommand{
				GuestID: domain.GuestID(guestID),
				BotID:   domain.BotID(botID),
				Text:    strings.Join(args, " "),
			})
			if err != nil {
				return withSignInHint(err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sent to guest %s (session %s)\n", guestID, record.SessionID)
			return nil
		},
	}

	cmd.Flags().StringVar(&guestID, "guest", "", "Guest ID")
	cmd.Flags().StringVar(&botID, "bot", "", "Bot ID (default: the selected bot, else the first one)")
	_ = cmd.MarkFlagRequired("guest")

	return cmd
}
