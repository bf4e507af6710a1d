package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/helmsman/internal/cli"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bot over stdin and stdout",
	Long: `Answers every frame read from stdin with one command frame on stdout until the
controller closes the stream. Logs are written to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		streams := cli.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
		_, err = cli.Execute(ctx, cfg, streams)
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("policy", "", "Decision policy: static, random or pursuit")
	runCmd.Flags().String("name", "", "Ship name sent with every command")
	runCmd.Flags().String("recovery", "", "Bad frame handling: skip, terminate or fallback")
	runCmd.Flags().Uint64("seed", 0, "Seed for the random policy")
	runCmd.Flags().String("log-level", "", "Log level: debug, info, warn or error")
	runCmd.Flags().String("log-format", "", "Log format: text or json")
	runCmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file when the run ends")

	// 'run' is the default when no command is provided
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
