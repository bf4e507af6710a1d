package policy

import (
	"context"
	"fmt"
	"math"

	"github.com/aretw0/helmsman/pkg/domain"
)

// PursuitConfig tunes the Pursuit policy.
type PursuitConfig struct {
	Name         string
	Thrust       float64 // thrust applied while chasing
	Gain         float64 // torque per radian of heading error
	MaxTorque    float64
	AimTolerance float64 // heading error (radians) under which metal is fired
	LaserRange   float64 // distance under which the laser is fired
}

// DefaultPursuitConfig returns a conservative tuning.
func DefaultPursuitConfig(name string) PursuitConfig {
	return PursuitConfig{
		Name:         name,
		Thrust:       1.0,
		Gain:         2.0,
		MaxTorque:    2.0,
		AimTolerance: 0.1,
		LaserRange:   128,
	}
}

// Pursuit steers toward the nearest other ship in a kinematics observation.
// The first kinematics entry is the ship itself; with no other ship it idles.
type Pursuit struct {
	cfg PursuitConfig
}

// NewPursuit creates a Pursuit policy.
func NewPursuit(cfg PursuitConfig) *Pursuit {
	return &Pursuit{cfg: cfg}
}

func (p *Pursuit) Decide(ctx context.Context, obs domain.Observation) (any, error) {
	ships, err := obs.Kinematics()
	if err != nil {
		return nil, fmt.Errorf("pursuit: %w", err)
	}

	idle := domain.Command{Name: p.cfg.Name}
	if len(ships) < 2 {
		return idle, nil
	}

	self, target := ships[0], ships[1]
	if self.DistanceTo(target) < 1e-6 {
		return idle, nil
	}

	heading := normalizeAngle(self.BearingTo(target) - self.Theta.Radians)
	torque := clamp(p.cfg.Gain*heading-self.Omega.Radians, p.cfg.MaxTorque)

	return domain.Command{
		Name:        p.cfg.Name,
		Thrust:      p.cfg.Thrust,
		Torque:      torque,
		MetalBullet: math.Abs(heading) <= p.cfg.AimTolerance,
		LaserBullet: self.DistanceTo(target) <= p.cfg.LaserRange,
	}, nil
}

// normalizeAngle maps a into (-pi, pi].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

func clamp(v, bound float64) float64 {
	if bound <= 0 {
		return v
	}
	return math.Max(-bound, math.Min(bound, v))
}
