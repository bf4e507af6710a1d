package policy

import (
	"context"

	"github.com/aretw0/helmsman/pkg/domain"
)

// Static answers every observation with the same command.
type Static struct {
	Command domain.Command
}

// NewStatic creates a Static policy.
func NewStatic(cmd domain.Command) *Static {
	return &Static{Command: cmd}
}

func (s *Static) Decide(ctx context.Context, obs domain.Observation) (any, error) {
	return s.Command, nil
}
