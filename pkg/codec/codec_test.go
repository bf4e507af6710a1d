package codec

import (
	"encoding/base64"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/helmsman/pkg/domain"
)

func frameOf(payload string) string {
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestDecodeFrame_Object(t *testing.T) {
	obs, err := DecodeFrame(frameOf(`{"x": 10}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"x": 10.0}, obs.Payload)
	assert.JSONEq(t, `{"x": 10}`, string(obs.Raw))
}

func TestDecodeFrame_AnyJSONValue(t *testing.T) {
	for payload, want := range map[string]any{
		`[1, 2]`: []any{1.0, 2.0},
		`"text"`: "text",
		`3.5`:    3.5,
		`null`:   nil,
		`true`:   true,
	} {
		obs, err := DecodeFrame(frameOf(payload))
		require.NoError(t, err, payload)
		assert.Equal(t, want, obs.Payload, payload)
	}
}

func TestDecodeFrame_TrimsLineEndings(t *testing.T) {
	obs, err := DecodeFrame("  " + frameOf(`{"x": 10}`) + "\r\n")
	require.NoError(t, err)
	assert.Equal(t, 10.0, obs.Fields()["x"])
}

func TestDecodeFrame_InvalidBase64(t *testing.T) {
	for _, line := range []string{
		"not base64!",
		"eyJ4IjogMTB9=", // bad padding
		"eyJ4Ijo",       // truncated
		"b'eyJ4IjogMTB9'",
	} {
		obs, err := DecodeFrame(line)
		require.ErrorIs(t, err, domain.ErrDecode, line)
		assert.NotErrorIs(t, err, domain.ErrParse)
		assert.Nil(t, obs.Payload)

		var decodeErr *domain.DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	}
}

func TestDecodeFrame_InvalidJSON(t *testing.T) {
	for _, payload := range []string{
		`{"x": `,
		`hello`,
		`{"x": 10} {"y": 1}`,
		`{"x": 10} trailing`,
		``,
		`   `,
	} {
		obs, err := DecodeFrame(frameOf(payload))
		require.ErrorIs(t, err, domain.ErrParse, "payload %q", payload)
		assert.NotErrorIs(t, err, domain.ErrDecode)
		assert.Nil(t, obs.Payload)
	}
}

func TestDecodeFrame_EmptyLineIsParseError(t *testing.T) {
	_, err := DecodeFrame("")
	require.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "empty payload")
}

func TestEncodeFrame_RoundTrip(t *testing.T) {
	commands := []domain.Command{
		{Name: "hi", Thrust: 1.9, Torque: 2.0},
		{Name: "", Thrust: 0, Torque: 0, MetalBullet: true, LaserBullet: true},
		{Name: "ünïcødé ship\n\"quoted\"", Thrust: -1e-9, Torque: 12345.678},
		{Name: "extras", Thrust: 1, Torque: -1, Extra: map[string]any{"team": "red", "priority": 2.0}},
	}

	for _, cmd := range commands {
		line, err := EncodeFrame(cmd)
		require.NoError(t, err)
		assert.NotContains(t, line, "\n")

		obs, err := DecodeFrame(line)
		require.NoError(t, err)
		assert.Equal(t, cmd.Map(), obs.Payload)

		back, err := DecodeCommand(line)
		require.NoError(t, err)
		assert.Equal(t, cmd.Name, back.Name)
		assert.Equal(t, cmd.Thrust, back.Thrust)
		assert.Equal(t, cmd.Torque, back.Torque)
		assert.Equal(t, cmd.MetalBullet, back.MetalBullet)
		assert.Equal(t, cmd.LaserBullet, back.LaserBullet)
	}
}

func TestEncodeFrame_RejectsLossyCommands(t *testing.T) {
	tests := []struct {
		name      string
		cmd       domain.Command
		wantField string
	}{
		{"name not valid UTF-8", domain.Command{Name: "ship\xff", Thrust: 1}, "name"},
		{"torque not finite", domain.Command{Name: "hi", Torque: math.NaN()}, "torque"},
		{"extra NaN", domain.Command{Name: "hi", Extra: map[string]any{"boost": math.NaN()}}, "boost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := EncodeFrame(tt.cmd)
			require.ErrorIs(t, err, domain.ErrSchema)
			assert.Empty(t, line)

			var schemaErr *domain.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.wantField, schemaErr.Field)
		})
	}
}

func TestEncodeFrame_ExampleScenario(t *testing.T) {
	cmd := domain.Command{Name: "hi", Thrust: 1.9, Torque: 2.0}

	line, err := EncodeFrame(cmd)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(line)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "hi", "thrust": 1.9, "torque": 2.0, "metal_bullet": false, "laser_bullet": false}`, string(raw))
}

func TestDecodeCommand_Schema(t *testing.T) {
	_, err := DecodeCommand(frameOf(`{"name": "hi", "thrust": "fast"}`))
	require.ErrorIs(t, err, domain.ErrSchema)

	_, err = DecodeCommand("%%%")
	require.ErrorIs(t, err, domain.ErrDecode)
}

func TestCodec_Lenient(t *testing.T) {
	strict := New()
	lenient := New(WithLenient(true))

	wrapped := "b'" + frameOf(`{"x": 10}`) + "'"
	_, err := strict.DecodeFrame(wrapped)
	require.ErrorIs(t, err, domain.ErrDecode)

	obs, err := lenient.DecodeFrame(wrapped)
	require.NoError(t, err)
	assert.Equal(t, 10.0, obs.Fields()["x"])

	unpadded := strings.TrimRight(frameOf(`{"x":1}`), "=")
	require.NotEqual(t, frameOf(`{"x":1}`), unpadded, "fixture must need padding")
	obs, err = lenient.DecodeFrame(unpadded)
	require.NoError(t, err)
	assert.Equal(t, 1.0, obs.Fields()["x"])

	_, err = lenient.DecodeFrame("b'!!!'")
	require.ErrorIs(t, err, domain.ErrDecode)
}

func TestCodec_MaxFrameSize(t *testing.T) {
	c := New(WithMaxFrameSize(16))

	_, err := c.DecodeFrame(frameOf(`{"x": 10}`))
	require.NoError(t, err)

	_, err = c.DecodeFrame(frameOf(`{"padding": "` + strings.Repeat("x", 32) + `"}`))
	require.ErrorIs(t, err, domain.ErrDecode)
	assert.ErrorIs(t, err, ErrFrameTooLarge)

	unlimited := New(WithMaxFrameSize(0))
	_, err = unlimited.DecodeFrame(frameOf(`{"padding": "` + strings.Repeat("x", 4096) + `"}`))
	require.NoError(t, err)
}

func TestNew_MaxFrameSizeFromEnv(t *testing.T) {
	t.Setenv(EnvMaxFrameSize, "8")
	c := New()
	_, err := c.DecodeFrame(frameOf(`{"x": 10}`))
	require.ErrorIs(t, err, ErrFrameTooLarge)

	t.Setenv(EnvMaxFrameSize, "garbage")
	assert.Equal(t, DefaultMaxFrameSize, New().maxFrameSize)
}

func TestEncodeValue_Observation(t *testing.T) {
	c := New()
	line, err := c.EncodeValue([]map[string]any{{"location": []float64{1, 2}}})
	require.NoError(t, err)
	assert.NotContains(t, line, "\n")

	obs, err := c.DecodeFrame(line)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"location":[1,2]}]`, string(obs.Raw))

	_, err = c.EncodeValue(func() {})
	assert.Error(t, err)
}
