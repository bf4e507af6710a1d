package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/helmsman/pkg/domain"
)

// ChainHooks combines several hook sets; callbacks run in argument order.
func ChainHooks(sets ...domain.TurnHooks) domain.TurnHooks {
	var starts, ends []func(context.Context, *domain.TurnEvent)
	for _, h := range sets {
		if h.OnTurnStart != nil {
			starts = append(starts, h.OnTurnStart)
		}
		if h.OnTurnEnd != nil {
			ends = append(ends, h.OnTurnEnd)
		}
	}
	return domain.TurnHooks{
		OnTurnStart: fanOut(starts),
		OnTurnEnd:   fanOut(ends),
	}
}

func fanOut(fns []func(context.Context, *domain.TurnEvent)) func(context.Context, *domain.TurnEvent) {
	if len(fns) == 0 {
		return nil
	}
	return func(ctx context.Context, e *domain.TurnEvent) {
		for _, fn := range fns {
			fn(ctx, e)
		}
	}
}

// LogHooks logs the end of every turn at debug level.
func LogHooks(logger *slog.Logger) domain.TurnHooks {
	return domain.TurnHooks{
		OnTurnEnd: func(ctx context.Context, e *domain.TurnEvent) {
			attrs := []any{
				"run_id", e.RunID,
				"turn", e.Turn,
				"outcome", string(e.Outcome),
				"frame_bytes", e.FrameBytes,
				"duration", e.Duration,
			}
			if e.Err != nil {
				attrs = append(attrs, "error", e.Err)
			}
			logger.DebugContext(ctx, "turn_end", attrs...)
		},
	}
}
