package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/helmsman"
	"github.com/aretw0/helmsman/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of helmsman",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.OutOrStdout() == os.Stdout {
			if profile := colorProfile(os.Stdout, false); profile != termenv.Ascii {
				tui.PrintBanner(os.Stdout, helmsman.Version, profile)
				return
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "helmsman version %s\n", helmsman.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
