package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/helmsman"
	"github.com/aretw0/helmsman/internal/config"
	"github.com/aretw0/helmsman/internal/logging"
	"github.com/aretw0/helmsman/pkg/codec"
	"github.com/aretw0/helmsman/pkg/observability"
	"github.com/aretw0/helmsman/pkg/policy"
	"github.com/aretw0/helmsman/pkg/runner"
)

// createLogger configures the application logger on w (Stderr in production).
func createLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, level, cfg.Format), nil
}

// createPolicy builds the decision policy named by cfg.Kind.
func createPolicy(cfg config.PolicyConfig) (policy.Policy, error) {
	switch strings.ToLower(cfg.Kind) {
	case config.PolicyStatic, "":
		return policy.NewStatic(config.CommandConfig{
			Name:        cfg.Name,
			Thrust:      cfg.Thrust,
			Torque:      cfg.Torque,
			MetalBullet: cfg.MetalBullet,
			LaserBullet: cfg.LaserBullet,
		}.Command()), nil
	case config.PolicyRandom:
		return policy.NewRandom(policy.RandomConfig{
			Name:      cfg.Name,
			MaxThrust: cfg.MaxThrust,
			MaxTorque: cfg.MaxTorque,
			FireRate:  cfg.FireRate,
			Seed:      cfg.Seed,
		}), nil
	case config.PolicyPursuit:
		return policy.NewPursuit(policy.PursuitConfig{
			Name:         cfg.Name,
			Thrust:       cfg.Thrust,
			Gain:         cfg.Gain,
			MaxTorque:    cfg.Torque,
			AimTolerance: cfg.AimTolerance,
			LaserRange:   cfg.LaserRange,
		}), nil
	default:
		return nil, fmt.Errorf("unknown policy kind %q", cfg.Kind)
	}
}

// createBotOptions translates the configuration into facade options.
// NewCodec builds the frame codec described by cfg. A zero MaxFrameSize
// disables the line limit, matching the bot built by Execute.
func NewCodec(cfg config.CodecConfig) *codec.Codec {
	return codec.New(codec.WithLenient(cfg.Lenient), codec.WithMaxFrameSize(cfg.MaxFrameSize))
}

func createBotOptions(cfg config.Config, streams Streams, logger *slog.Logger, metrics *observability.Metrics) ([]helmsman.Option, error) {
	recovery, err := runner.ParseRecovery(cfg.Recovery)
	if err != nil {
		return nil, err
	}

	opts := []helmsman.Option{
		helmsman.WithIO(streams.In, streams.Out),
		helmsman.WithLogger(logger),
		helmsman.WithLenient(cfg.Codec.Lenient),
		helmsman.WithMaxFrameSize(cfg.Codec.MaxFrameSize),
		helmsman.WithTurnHooks(observability.ChainHooks(
			observability.LogHooks(logger),
			metrics.Hooks(),
		)),
	}

	if recovery == runner.RecoverFallback {
		fallback := cfg.Fallback.Command()
		if fallback.Name == "" {
			fallback.Name = cfg.Policy.Name
		}
		opts = append(opts, helmsman.WithFallback(fallback))
	} else {
		opts = append(opts, helmsman.WithRecovery(recovery))
	}

	return opts, nil
}
