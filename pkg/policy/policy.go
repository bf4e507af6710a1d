// Package policy provides decision strategies that map an observation to a candidate command.
//
// The turn loop only requires the Policy interface; the strategies here are bundled so the
// helmsman binary is useful out of the box.
package policy

import (
	"context"

	"github.com/aretw0/helmsman/pkg/domain"
)

// Policy decides the command for one turn. The returned candidate is validated
// against the command schema before it is sent, so it may be a domain.Command,
// a map[string]any or a struct with mapstructure tags.
type Policy interface {
	Decide(ctx context.Context, obs domain.Observation) (any, error)
}

// Func adapts an ordinary function to the Policy interface.
type Func func(ctx context.Context, obs domain.Observation) (any, error)

// Decide calls f(ctx, obs).
func (f Func) Decide(ctx context.Context, obs domain.Observation) (any, error) {
	return f(ctx, obs)
}
