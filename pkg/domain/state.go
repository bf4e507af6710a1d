package domain

// LoopState is the state of the turn loop.
type LoopState string

const (
	LoopAwaitingInput LoopState = "awaiting_input" // Initial; a line is being waited for
	LoopTerminated    LoopState = "terminated"     // Sink state: input exhausted or fatal error
)

// Terminal reports whether the loop can no longer make progress.
func (s LoopState) Terminal() bool {
	return s == LoopTerminated
}
