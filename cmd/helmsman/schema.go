package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/helmsman/internal/presentation/tui"
	"github.com/aretw0/helmsman/pkg/command"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the command schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tty := cmd.OutOrStdout() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
		render, err := tui.NewRenderer(tty)
		if err != nil {
			return err
		}

		out, err := render(command.Describe())
		if err != nil {
			return fmt.Errorf("render schema: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
