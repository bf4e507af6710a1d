package policy

import (
	"context"
	"math/rand/v2"

	"github.com/aretw0/helmsman/pkg/domain"
)

// RandomConfig bounds the commands produced by Random.
type RandomConfig struct {
	Name      string
	MaxThrust float64 // thrust is drawn from [-MaxThrust, MaxThrust]
	MaxTorque float64 // torque is drawn from [-MaxTorque, MaxTorque]
	FireRate  float64 // probability of firing each weapon on a turn
	Seed      uint64
}

// Random ignores the observation and picks controls uniformly at random.
type Random struct {
	cfg RandomConfig
	rng *rand.Rand
}

// NewRandom creates a Random policy. The same seed yields the same command sequence.
func NewRandom(cfg RandomConfig) *Random {
	return &Random{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

func (r *Random) Decide(ctx context.Context, obs domain.Observation) (any, error) {
	return domain.Command{
		Name:        r.cfg.Name,
		Thrust:      r.symmetric(r.cfg.MaxThrust),
		Torque:      r.symmetric(r.cfg.MaxTorque),
		MetalBullet: r.rng.Float64() < r.cfg.FireRate,
		LaserBullet: r.rng.Float64() < r.cfg.FireRate,
	}, nil
}

func (r *Random) symmetric(bound float64) float64 {
	return (r.rng.Float64()*2 - 1) * bound
}
