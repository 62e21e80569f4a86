package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newBotCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "List bots and choose the default one",
	}

	cmd.AddCommand(newBotListCmd(app), newBotSelectCmd(app))

	return cmd
}

func newBotListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the bots of the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Current(cmd.Context())
			if err != nil {
				return withSignInHint(err)
			}

			bots, err := app.sessions.Bots(cmd.Context())
			if err != nil {
				return err
			}
			if len(bots) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No bots yet.")
				return nil
			}

			for _, bot := range bots {
				marker := " "
				if bot.ID == session.DefaultBotID {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, bot.ID, bot.Name)
			}

			return nil
		},
	}
}

func newBotSelectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select <bot-id>",
		Short: "Use a bot by default for chat, doc and dashboard commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bot, err := app.sessions.SelectBot(cmd.Context(), domain.BotID(strings.TrimSpace(args[0])))
			if err != nil {
				return withSignInHint(err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Default bot set to %s (%s)\n", bot.Name, bot.ID)
			return nil
		},
	}
}
