package cmd

import (
	"github.com/bnema/tekoai-cli/internal/adapters/render/screen"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.sessions.Profile(cmd.Context())
			if err != nil {
				return withSignInHint(err)
			}

			return writePage(cmd, app, screen.ProfilePage{Session: profile.Session, DefaultBot: profile.DefaultBot})
		},
	}
}
