package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/helmsman"
	"github.com/aretw0/helmsman/pkg/codec"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "helmsman version "+helmsman.Version+"\n", out)
}

func TestRunCommand(t *testing.T) {
	out, logs, err := execute(t, "eyJ4IjogMTB9\n", "run", "--name", "bob", "--log-format", "json")
	require.NoError(t, err)

	cmd, err := codec.DecodeCommand(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "bob", cmd.Name)
	assert.Equal(t, 1.9, cmd.Thrust)
	assert.Contains(t, logs, `"msg":"bot finished"`)
}

func TestEncodeDecodeCommands(t *testing.T) {
	frames, _, err := execute(t, `{"x": 10}`+"\n", "encode")
	require.NoError(t, err)
	assert.Equal(t, "eyJ4IjoxMH0=\n", frames)

	out, _, err := execute(t, frames, "decode")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"x\": 10\n}\n", out)
}

func TestSchemaCommand(t *testing.T) {
	out, _, err := execute(t, "", "schema")
	require.NoError(t, err)
	for _, field := range []string{"name", "thrust", "torque", "metal_bullet", "laser_bullet"} {
		assert.Contains(t, out, field)
	}
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("policy:\n  kind: random\n  seed: 7\n"), 0o644))

	out, _, err := execute(t, "", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (policy random, recovery skip)")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("recovery = \"retry\"\n"), 0o644))

	_, _, err = execute(t, "", "validate", bad)
	assert.ErrorContains(t, err, "unknown recovery policy")

	_, _, err = execute(t, "", "validate")
	assert.Error(t, err)
}
