package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/helmsman/internal/cli"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Print the JSON payload of frames read from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		asCommand, _ := cmd.Flags().GetBool("command")
		noColor, _ := cmd.Flags().GetBool("no-color")

		opts := cli.DecodeOptions{
			Codec:   cli.NewCodec(cfg.Codec),
			Command: asCommand,
			Profile: colorProfile(os.Stdout, noColor || cmd.OutOrStdout() != os.Stdout),
		}
		return cli.Decode(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().Bool("command", false, "Validate each payload against the command schema")
	decodeCmd.Flags().Bool("no-color", false, "Disable coloured output")
}
