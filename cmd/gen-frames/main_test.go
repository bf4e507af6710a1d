package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/helmsman/pkg/codec"
)

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, 5, 42))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)

	for _, line := range lines {
		obs, err := codec.DecodeFrame(line)
		require.NoError(t, err)

		ships, err := obs.Kinematics()
		require.NoError(t, err)
		require.Len(t, ships, enemies+1)

		for i := 1; i < len(ships); i++ {
			assert.LessOrEqual(t, ships[0].DistanceTo(ships[i-1]), ships[0].DistanceTo(ships[i]))
		}
		assert.Zero(t, ships[0].DistanceTo(ships[0]))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, generate(&a, 3, 7))
	require.NoError(t, generate(&b, 3, 7))
	assert.Equal(t, a.String(), b.String())
}
