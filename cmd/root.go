package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "tk",
		Short:         "TekoAI CLI (tk): follow and answer chatbot conversations",
		Long:          "tk (TekoAI CLI) signs you in to your chatbot account, lists your bots, chats and training documents, shows dashboard counters, and watches a guest conversation live with a notification whenever a new message arrives.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if verbose {
			app.logLevel.SetLevel(zap.DebugLevel)
		}
		return nil
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newSignupCmd(app),
		newForgotCmd(app),
		newProfileCmd(app),
		newBotCmd(app),
		newChatCmd(app),
		newDocCmd(app),
		newDashboardCmd(app),
	)

	return rootCmd
}
