package cmd

import (
	"fmt"

	"github.com/bnema/tekoai-cli/internal/adapters/render/screen"
	"github.com/bnema/tekoai-cli/internal/application"
	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newDocCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Browse training documents",
	}

	cmd.AddCommand(newDocListCmd(app), newDocURLCmd(app))

	return cmd
}

func newDocListCmd(app *app) *cobra.Command {
	var botID string
	var search string
	var sortOrder string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the documents a bot was trained on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := application.ParseSortOrder(sortOrder)
			if err != nil {
				return err
			}

			list, err := app.documents.List(cmd.Context(), application.ListDocumentsQuery{
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
			return writePage(cmd, app, screen.DocumentListPage{Bot: list.Bot, Documents: list.Documents})
		},
	}

	cmd.Flags().StringVar(&botID, "bot", "", "Bot ID (default: the selected bot, else the first one)")
	cmd.Flags().StringVar(&search, "search", "", "Only show documents whose name contains this text")
	cmd.Flags().StringVar(&sortOrder, "sort", "", "Sort order (name|time)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newDocURLCmd(app *app) *cobra.Command {
	var botID string

	cmd := &cobra.Command{
		Use:   "url <document-id>",
		Short: "Print the download URL of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := app.documents.URL(cmd.Context(), domain.BotID(botID), args[0])
			if err != nil {
				return withSignInHint(err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}

	cmd.Flags().StringVar(&botID, "bot", "", "Bot ID (default: the selected bot, else the first one)")

	return cmd
}
