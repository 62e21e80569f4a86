package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/tekoai-cli/internal/adapters/render/screen"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeYAML(cmd *cobra.Command, value any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return err
	}
	return enc.Close()
}

func writePage(cmd *cobra.Command, app *app, page screen.Page) error {
	return writePageTo(cmd.OutOrStdout(), app, page)
}

func writePageTo(out io.Writer, app *app, page screen.Page) error {
	rendered, err := app.render(page, screen.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(out, rendered)
	return err
}
