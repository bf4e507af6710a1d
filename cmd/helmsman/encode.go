package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/helmsman/internal/cli"
	"github.com/aretw0/helmsman/pkg/codec"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Frame one JSON document per stdin line",
	Long: `Reads one JSON document per line and prints its frame. Useful to feed the bot
hand-written observations: echo '{"x": 10}' | helmsman encode | helmsman run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asCommand, _ := cmd.Flags().GetBool("command")
		return cli.Encode(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), codec.New(), asCommand)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().Bool("command", false, "Validate each document against the command schema")
}
