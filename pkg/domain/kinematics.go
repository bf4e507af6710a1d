package domain

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Angle mirrors the server's angle encoding: {"radians": x}.
type Angle struct {
	Radians float64 `json:"radians" mapstructure:"radians"`
}

// Kinematics is the state of one ship as broadcast by the game server.
type Kinematics struct {
	Location     [2]float64 `json:"location" mapstructure:"location"`
	Velocity     [2]float64 `json:"velocity" mapstructure:"velocity"`
	Acceleration float64    `json:"acceleration" mapstructure:"acceleration"`
	Theta        Angle      `json:"theta" mapstructure:"theta"`
	Omega        Angle      `json:"omega" mapstructure:"omega"`
	Alpha        float64    `json:"alpha" mapstructure:"alpha"`
}

// DistanceTo returns the euclidean distance between two ship locations.
func (k Kinematics) DistanceTo(other Kinematics) float64 {
	return math.Hypot(other.Location[0]-k.Location[0], other.Location[1]-k.Location[1])
}

// BearingTo returns the absolute angle from k to other, in radians.
func (k Kinematics) BearingTo(other Kinematics) float64 {
	return math.Atan2(other.Location[1]-k.Location[1], other.Location[0]-k.Location[0])
}

// Kinematics interprets the payload as the server's kinematics list. The list
// is sorted by distance to the receiving ship, so the first entry is the ship
// itself.
func (o Observation) Kinematics() ([]Kinematics, error) {
	list, ok := o.Payload.([]any)
	if !ok {
		return nil, fmt.Errorf("observation: expected kinematics list, got %T", o.Payload)
	}

	out := make([]Kinematics, 0, len(list))
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: bareAngleHook,
		Result:     &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(list); err != nil {
		return nil, fmt.Errorf("observation: decode kinematics: %w", err)
	}
	return out, nil
}

// bareAngleHook accepts a plain number where an Angle is expected.
func bareAngleHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(Angle{}) {
		return data, nil
	}
	switch v := data.(type) {
	case float64:
		return Angle{Radians: v}, nil
	case int:
		return Angle{Radians: float64(v)}, nil
	}
	return data, nil
}
