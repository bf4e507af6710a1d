// Command gen-frames writes a synthetic stream of kinematics observations, one frame per
// line, for exercising a bot without a game server:
//
//	gen-frames 100 | helmsman run --policy pursuit
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"

	"github.com/aretw0/helmsman/pkg/codec"
	"github.com/aretw0/helmsman/pkg/domain"
)

const (
	defaultTurns = 10
	arenaSize    = 512.0
	enemies      = 3
)

func main() {
	turns := defaultTurns
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 0 {
			fmt.Fprintf(os.Stderr, "invalid turn count %q\n", os.Args[1])
			os.Exit(1)
		}
		turns = n
	}

	if err := generate(os.Stdout, turns, 1); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generate writes turns frames. Every frame lists the receiving ship first and the others
// by increasing distance, the way the server broadcasts them.
func generate(w io.Writer, turns int, seed uint64) error {
	rng := rand.New(rand.NewPCG(seed, seed))
	c := codec.New()
	out := bufio.NewWriter(w)

	ships := make([]domain.Kinematics, enemies+1)
	for i := range ships {
		ships[i] = domain.Kinematics{
			Location: [2]float64{rng.Float64() * arenaSize, rng.Float64() * arenaSize},
			Velocity: [2]float64{rng.NormFloat64(), rng.NormFloat64()},
			Theta:    domain.Angle{Radians: rng.Float64()*2*math.Pi - math.Pi},
		}
	}

	for turn := 0; turn < turns; turn++ {
		for i := range ships {
			ships[i].Location[0] += ships[i].Velocity[0]
			ships[i].Location[1] += ships[i].Velocity[1]
			ships[i].Omega.Radians = rng.NormFloat64() * 0.1
			ships[i].Theta.Radians += ships[i].Omega.Radians
		}

		self := ships[0]
		view := slices.Clone(ships)
		slices.SortStableFunc(view, func(a, b domain.Kinematics) int {
			da, db := self.DistanceTo(a), self.DistanceTo(b)
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			}
			return 0
		})

		frame, err := c.EncodeValue(view)
		if err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}
		if _, err := fmt.Fprintln(out, frame); err != nil {
			return err
		}
	}
	return out.Flush()
}
