package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservation_Kinematics(t *testing.T) {
	obs := Observation{Payload: []any{
		map[string]any{
			"location":     []any{0.0, 0.0},
			"velocity":     []any{1.0, 0.0},
			"acceleration": 0.5,
			"theta":        map[string]any{"radians": 0.0},
			"omega":        map[string]any{"radians": 0.1},
			"alpha":        0.0,
		},
		map[string]any{
			"location": []any{3.0, 4.0},
			"velocity": []any{0.0, 0.0},
			"theta":    1.5,
		},
	}}

	ships, err := obs.Kinematics()
	require.NoError(t, err)
	require.Len(t, ships, 2)

	assert.Equal(t, [2]float64{1, 0}, ships[0].Velocity)
	assert.Equal(t, 0.1, ships[0].Omega.Radians)
	assert.Equal(t, 1.5, ships[1].Theta.Radians, "bare numbers decode as radians")
	assert.InDelta(t, 5.0, ships[0].DistanceTo(ships[1]), 1e-9)
	assert.InDelta(t, math.Atan2(4, 3), ships[0].BearingTo(ships[1]), 1e-9)
}

func TestObservation_Kinematics_WrongShape(t *testing.T) {
	_, err := Observation{Payload: map[string]any{"x": 10.0}}.Kinematics()
	require.Error(t, err)

	_, err = Observation{Payload: []any{map[string]any{"location": "here"}}}.Kinematics()
	require.Error(t, err)
}

func TestObservation_Field(t *testing.T) {
	obs := Observation{Payload: map[string]any{"x": 10.0}}

	v, ok := obs.Field("x")
	require.True(t, ok)
	assert.Equal(t, 10.0, v)

	_, ok = obs.Field("y")
	assert.False(t, ok)

	_, ok = Observation{Payload: []any{1.0}}.Field("x")
	assert.False(t, ok)
	assert.Nil(t, Observation{Payload: "scalar"}.Fields())
}
