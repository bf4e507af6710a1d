package helmsman

import (
	"context"
	_ "embed"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/helmsman/pkg/codec"
	"github.com/aretw0/helmsman/pkg/command"
	"github.com/aretw0/helmsman/pkg/domain"
	"github.com/aretw0/helmsman/pkg/policy"
	"github.com/aretw0/helmsman/pkg/runner"
)

//go:embed VERSION
var version string

// Version is the release of this module.
var Version = strings.TrimSpace(version)

// Bot is the high-level entry point: a policy wired to the frame protocol.
type Bot struct {
	policy     policy.Policy
	input      io.Reader
	output     io.Writer
	codecOpts  []codec.Option
	runnerOpts []runner.Option
	runner     *runner.Runner
}

// Option defines a functional option for configuring the Bot.
type Option func(*Bot)

// WithIO sets the frame streams. Nil keeps Stdin or Stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(b *Bot) {
		b.input = in
		b.output = out
	}
}

// WithLogger sets a custom structured logger. Logs never go to the frame output.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		b.runnerOpts = append(b.runnerOpts, runner.WithLogger(logger))
	}
}

// WithLenient accepts the Python bytes-literal wrapper and unpadded base64 on input.
func WithLenient(lenient bool) Option {
	return func(b *Bot) {
		b.codecOpts = append(b.codecOpts, codec.WithLenient(lenient))
	}
}

// WithMaxFrameSize bounds the length of an input line.
func WithMaxFrameSize(n int) Option {
	return func(b *Bot) {
		b.codecOpts = append(b.codecOpts, codec.WithMaxFrameSize(n))
	}
}

// WithRecovery sets what happens to frames that cannot be decoded.
func WithRecovery(recovery runner.Recovery) Option {
	return func(b *Bot) {
		b.runnerOpts = append(b.runnerOpts, runner.WithRecovery(recovery))
	}
}

// WithFallback sets the command answered to bad frames; it implies runner.RecoverFallback.
func WithFallback(cmd domain.Command) Option {
	return func(b *Bot) {
		b.runnerOpts = append(b.runnerOpts,
			runner.WithRecovery(runner.RecoverFallback),
			runner.WithFallback(cmd),
		)
	}
}

// WithTurnHooks registers observability hooks.
func WithTurnHooks(hooks domain.TurnHooks) Option {
	return func(b *Bot) {
		b.runnerOpts = append(b.runnerOpts, runner.WithHooks(hooks))
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(b *Bot) {
		b.runnerOpts = append(b.runnerOpts, runner.WithRunID(id))
	}
}

// New wires p to the frame protocol. Configuration problems surface from Run.
func New(p policy.Policy, opts ...Option) *Bot {
	b := &Bot{policy: p}
	for _, opt := range opts {
		opt(b)
	}

	runnerOpts := []runner.Option{
		runner.WithPolicy(b.policy),
		runner.WithCodec(codec.New(b.codecOpts...)),
		runner.WithHandler(runner.NewStreamHandler(b.input, b.output)),
	}
	b.runner = runner.NewRunner(append(runnerOpts, b.runnerOpts...)...)
	return b
}

// Run answers frames until the input is exhausted (nil error) or a fatal error occurs.
// A Bot runs once; later calls return runner.ErrTerminated.
func (b *Bot) Run(ctx context.Context) (runner.Stats, error) {
	return b.runner.Run(ctx)
}

// State reports whether the bot is still awaiting input.
func (b *Bot) State() domain.LoopState {
	return b.runner.State()
}

// RunID identifies this bot's run in logs and turn events.
func (b *Bot) RunID() string {
	return b.runner.RunID
}

// Decide is a convenience that answers a single frame without a stream,
// for controllers embedding the bot in-process.
func (b *Bot) Decide(ctx context.Context, frame string) (string, error) {
	if b.policy == nil {
		return "", runner.ErrNoPolicy
	}
	c := b.runner.Codec
	obs, err := c.DecodeFrame(frame)
	if err != nil {
		return "", err
	}
	candidate, err := b.policy.Decide(ctx, obs)
	if err != nil {
		return "", err
	}
	cmd, err := command.Validate(candidate)
	if err != nil {
		return "", err
	}
	return c.EncodeFrame(cmd)
}
