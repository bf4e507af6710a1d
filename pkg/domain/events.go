package domain

import (
	"context"
	"time"
)

// TurnOutcome describes how a turn ended.
type TurnOutcome string

const (
	OutcomeAnswered TurnOutcome = "answered" // A policy command was written
	OutcomeFallback TurnOutcome = "fallback" // The fallback command was written after a bad frame
	OutcomeSkipped  TurnOutcome = "skipped"  // A bad frame was dropped without output
	OutcomeFailed   TurnOutcome = "failed"   // The turn ended the loop with an error
)

// TurnEvent describes one iteration of the loop.
type TurnEvent struct {
	Timestamp  time.Time     `json:"timestamp"`
	RunID      string        `json:"run_id"`
	Turn       uint64        `json:"turn"`
	FrameBytes int           `json:"frame_bytes"`
	Outcome    TurnOutcome   `json:"outcome,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
	Err        error         `json:"-"`
}

// TurnHooks defines callbacks for loop observability.
type TurnHooks struct {
	OnTurnStart func(context.Context, *TurnEvent)
	OnTurnEnd   func(context.Context, *TurnEvent)
}
