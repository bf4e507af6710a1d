package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/helmsman/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "helmsman",
	Short: "Helmsman is a decision loop for a turn-based ship bot",
	Long: `Helmsman reads base64-framed JSON observations from stdin, asks a policy for a
ship command, and answers each one with a framed command on stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (.yaml, .json or .toml; default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().Bool("lenient", false, "Accept b'...' wrapped and unpadded frames")
}

// loadConfig reads the config file and environment, then applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("lenient") {
		cfg.Codec.Lenient, _ = flags.GetBool("lenient")
	}
	for flag, target := range map[string]*string{
		"policy":       &cfg.Policy.Kind,
		"name":         &cfg.Policy.Name,
		"recovery":     &cfg.Recovery,
		"log-level":    &cfg.Log.Level,
		"log-format":   &cfg.Log.Format,
		"metrics-file": &cfg.Metrics.File,
	} {
		if flags.Changed(flag) {
			*target, _ = flags.GetString(flag)
		}
	}
	if flags.Changed("seed") {
		cfg.Policy.Seed, _ = flags.GetUint64("seed")
	}
	return cfg, nil
}

// colorProfile returns the terminal's profile when f is a TTY and colours are wanted.
func colorProfile(f *os.File, noColor bool) termenv.Profile {
	if noColor || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}
