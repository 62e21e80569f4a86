package cmd

import (
	"context"

	"github.com/bnema/tekoai-cli/internal/adapters/render/screen"
	"github.com/bnema/tekoai-cli/internal/application"
	"github.com/bnema/tekoai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	var botID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show message, guest and manual response counters for a bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var dashboard application.Dashboard
			load := func(ctx context.Context) error {
				var err error
				dashboard, err = app.dashboard.Load(ctx, domain.BotID(botID))
				return err
			}

			var err error
			if asJSON {
				err = load(cmd.Context())
			} else {
				err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching dashboard...", load)
			}
			if err != nil {
				return withSignInHint(err)
			}

			if asJSON {
				return writeJSON(cmd, dashboard)
			}
			return writePage(cmd, app, screen.DashboardPage{
				Session:  dashboard.Session,
				Bots:     dashboard.Bots,
				Selected: dashboard.Selected,
				Counts:   dashboard.Counts,
			})
		},
	}

	cmd.Flags().StringVar(&botID, "bot", "", "Bot ID (default: the selected bot, else the first one)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
