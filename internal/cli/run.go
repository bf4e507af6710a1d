package cli

import (
	"context"
	"io"
	"os"

	"github.com/aretw0/helmsman"
	"github.com/aretw0/helmsman/internal/config"
	"github.com/aretw0/helmsman/pkg/observability"
	"github.com/aretw0/helmsman/pkg/runner"
)

// Streams are the three standard streams of a command.
// Frames travel on In and Out; Err carries logs only.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Execute handles the 'run' command: it validates cfg, runs the bot until the
// controller closes the stream, and exports metrics when a file is configured.
// An interrupted run is not an error.
func Execute(ctx context.Context, cfg config.Config, streams Streams) (runner.Stats, error) {
	if err := cfg.Validate(); err != nil {
		return runner.Stats{}, err
	}

	logger, err := createLogger(cfg.Log, streams.Err)
	if err != nil {
		return runner.Stats{}, err
	}

	p, err := createPolicy(cfg.Policy)
	if err != nil {
		return runner.Stats{}, err
	}

	metrics := observability.NewMetrics()
	opts, err := createBotOptions(cfg, streams, logger, metrics)
	if err != nil {
		return runner.Stats{}, err
	}

	bot := helmsman.New(p, opts...)
	logger.Info("bot started",
		"run_id", bot.RunID(),
		"policy", cfg.Policy.Kind,
		"name", cfg.Policy.Name,
		"recovery", cfg.Recovery,
	)

	stats, runErr := bot.Run(ctx)

	if cfg.Metrics.File != "" {
		if err := metrics.WriteFile(cfg.Metrics.File); err != nil {
			logger.Error("failed to write metrics", "path", cfg.Metrics.File, "error", err)
		}
	}

	attrs := []any{
		"run_id", bot.RunID(),
		"turns", stats.Turns,
		"written", stats.Written,
		"skipped", stats.Skipped,
		"fallbacks", stats.Fallbacks,
		"interrupted", isInterrupted(runErr),
	}
	if sig := signalOf(ctx); sig != nil {
		attrs = append(attrs, "signal", sig.String())
	}
	logger.Info("bot finished", attrs...)

	return stats, handleExecutionError(runErr)
}
