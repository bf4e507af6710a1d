package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/helmsman/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config>",
	Short: "Check a configuration file",
	Long:  `Loads the file with environment overrides applied and reports every invalid setting.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (policy %s, recovery %s)\n", args[0], cfg.Policy.Kind, cfg.Recovery)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
