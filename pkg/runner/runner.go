package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/helmsman/internal/logging"
	"github.com/aretw0/helmsman/pkg/codec"
	"github.com/aretw0/helmsman/pkg/command"
	"github.com/aretw0/helmsman/pkg/domain"
	"github.com/aretw0/helmsman/pkg/policy"
)

var (
	// ErrNoPolicy is returned by Run when no decision policy was configured.
	ErrNoPolicy = errors.New("runner: no decision policy configured")
	// ErrTerminated is returned by Run on a runner whose loop already ended.
	ErrTerminated = errors.New("runner: loop already terminated")
)

// Runner drives the turn loop: one frame in, one command out.
type Runner struct {
	// Handler is the line IO strategy. Defaults to a StreamHandler over Stdin/Stdout.
	Handler LineHandler

	// Policy decides the command for each observation.
	Policy policy.Policy

	// Codec frames observations and commands. Defaults to codec.New().
	Codec *codec.Codec

	// Logger is used for per-turn diagnostics.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Recovery applies to frames that fail to decode or parse. Defaults to RecoverSkip.
	Recovery Recovery

	// Fallback is written for bad frames under RecoverFallback.
	Fallback *domain.Command

	Hooks domain.TurnHooks
	RunID string

	state domain.LoopState
	stats Stats
}

// Stats counts what happened during a run.
type Stats struct {
	Turns     uint64 `json:"turns"`     // lines read
	Written   uint64 `json:"written"`   // lines written
	Skipped   uint64 `json:"skipped"`   // bad frames dropped
	Fallbacks uint64 `json:"fallbacks"` // bad frames answered with the fallback command
}

// NewRunner creates a Runner in the Awaiting Input state.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Recovery: RecoverSkip,
		RunID:    uuid.NewString(),
		state:    domain.LoopAwaitingInput,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewStreamHandler(nil, nil)
	}
	if r.Codec == nil {
		r.Codec = codec.New()
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// State reports the current loop state.
func (r *Runner) State() domain.LoopState {
	return r.state
}

// Stats returns the counters of the current or last run.
func (r *Runner) Stats() Stats {
	return r.stats
}

// Run executes turns until the input is exhausted, which is a normal end and
// returns a nil error. Decode failures follow the Recovery policy; policy
// errors, schema violations and IO failures end the loop with an error.
// The context is checked before each read; the read itself is not interruptible.
// A Runner runs once: calling Run again returns ErrTerminated and the final Stats.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	if r.state.Terminal() {
		return r.stats, ErrTerminated
	}
	if err := r.validate(); err != nil {
		r.state = domain.LoopTerminated
		return r.stats, err
	}

	logger := r.Logger.With("run_id", r.RunID)
	logger.Debug("turn loop started", "recovery", string(r.Recovery))

	for {
		if err := ctx.Err(); err != nil {
			r.state = domain.LoopTerminated
			return r.stats, err
		}

		line, err := r.Handler.ReadLine(ctx)
		if err != nil {
			r.state = domain.LoopTerminated
			if errors.Is(err, io.EOF) {
				logger.Debug("input exhausted", "turns", r.stats.Turns, "written", r.stats.Written)
				return r.stats, nil
			}
			return r.stats, fmt.Errorf("read frame: %w", err)
		}

		if err := r.turn(ctx, logger, line); err != nil {
			r.state = domain.LoopTerminated
			return r.stats, err
		}
	}
}

func (r *Runner) validate() error {
	if r.Policy == nil {
		return ErrNoPolicy
	}
	recovery, err := ParseRecovery(string(r.Recovery))
	if err != nil {
		return err
	}
	r.Recovery = recovery
	if r.Recovery == RecoverFallback {
		if r.Fallback == nil {
			return errors.New("runner: fallback recovery requires a fallback command")
		}
		cmd, err := command.Validate(*r.Fallback)
		if err != nil {
			return fmt.Errorf("runner: invalid fallback command: %w", err)
		}
		r.Fallback = &cmd
	}
	return nil
}

func (r *Runner) turn(ctx context.Context, logger *slog.Logger, line string) error {
	r.stats.Turns++
	event := &domain.TurnEvent{
		Timestamp:  time.Now(),
		RunID:      r.RunID,
		Turn:       r.stats.Turns,
		FrameBytes: len(line),
	}
	if r.Hooks.OnTurnStart != nil {
		r.Hooks.OnTurnStart(ctx, event)
	}

	outcome, err := r.step(ctx, logger.With("turn", event.Turn), line)

	event.Outcome = outcome
	event.Err = err
	event.Duration = time.Since(event.Timestamp)
	if r.Hooks.OnTurnEnd != nil {
		r.Hooks.OnTurnEnd(ctx, event)
	}
	if err != nil {
		return fmt.Errorf("turn %d: %w", event.Turn, err)
	}
	return nil
}

func (r *Runner) step(ctx context.Context, logger *slog.Logger, line string) (domain.TurnOutcome, error) {
	obs, err := r.Codec.DecodeFrame(line)
	if err != nil {
		return r.recoverFrame(ctx, logger, err)
	}

	candidate, err := r.Policy.Decide(ctx, obs)
	if err != nil {
		return domain.OutcomeFailed, fmt.Errorf("policy: %w", err)
	}

	cmd, err := command.Validate(candidate)
	if err != nil {
		logger.Error("policy returned an invalid command", "error", err)
		return domain.OutcomeFailed, err
	}

	if err := r.emit(ctx, cmd); err != nil {
		return domain.OutcomeFailed, err
	}
	logger.Debug("command sent", "thrust", cmd.Thrust, "torque", cmd.Torque)
	return domain.OutcomeAnswered, nil
}

func (r *Runner) recoverFrame(ctx context.Context, logger *slog.Logger, err error) (domain.TurnOutcome, error) {
	switch r.Recovery {
	case RecoverTerminate:
		return domain.OutcomeFailed, err
	case RecoverFallback:
		logger.Warn("bad frame answered with fallback command", "error", err)
		if err := r.emit(ctx, *r.Fallback); err != nil {
			return domain.OutcomeFailed, err
		}
		r.stats.Fallbacks++
		return domain.OutcomeFallback, nil
	default:
		logger.Warn("bad frame skipped", "error", err)
		r.stats.Skipped++
		return domain.OutcomeSkipped, nil
	}
}

func (r *Runner) emit(ctx context.Context, cmd domain.Command) error {
	line, err := r.Codec.EncodeFrame(cmd)
	if err != nil {
		return err
	}
	if err := r.Handler.WriteLine(ctx, line); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	r.stats.Written++
	return nil
}
