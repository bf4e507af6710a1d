package runner

import (
	"log/slog"

	"github.com/aretw0/helmsman/pkg/codec"
	"github.com/aretw0/helmsman/pkg/domain"
	"github.com/aretw0/helmsman/pkg/policy"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithHandler configures the line IO strategy.
func WithHandler(handler LineHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithPolicy configures the decision policy. It is required.
func WithPolicy(p policy.Policy) Option {
	return func(r *Runner) {
		r.Policy = p
	}
}

// WithCodec configures the frame codec.
func WithCodec(c *codec.Codec) Option {
	return func(r *Runner) {
		r.Codec = c
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithRecovery sets the policy for frames that cannot be decoded.
func WithRecovery(recovery Recovery) Option {
	return func(r *Runner) {
		r.Recovery = recovery
	}
}

// WithFallback sets the command written under RecoverFallback.
func WithFallback(cmd domain.Command) Option {
	return func(r *Runner) {
		r.Fallback = &cmd
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.TurnHooks) Option {
	return func(r *Runner) {
		r.Hooks = hooks
	}
}

// WithRunID overrides the generated run identifier used in logs and events.
func WithRunID(id string) Option {
	return func(r *Runner) {
		r.RunID = id
	}
}
