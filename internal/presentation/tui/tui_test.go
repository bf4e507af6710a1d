package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Plain(t *testing.T) {
	var buf bytes.Buffer
	raw := []byte(`{"name":"hi","thrust":1.9,"tags":["a"],"empty":{},"on":true,"none":null}`)

	require.NoError(t, WriteJSON(&buf, raw, termenv.Ascii))

	want := `{
  "name": "hi",
  "thrust": 1.9,
  "tags": [
    "a"
  ],
  "empty": {},
  "on": true,
  "none": null
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON_Coloured(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []byte(`{"x": 10}`), termenv.TrueColor))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "10")
	assert.Contains(t, out, `"x"`)
}

func TestWriteJSON_Invalid(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteJSON(&buf, []byte(`{"x":`), termenv.Ascii))
}

func TestNewRenderer_Plain(t *testing.T) {
	render, err := NewRenderer(false)
	require.NoError(t, err)

	out, err := render("# Command\n\n| field | type |\n|---|---|\n| name | string |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Command")
	assert.Contains(t, out, "name")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "v1.2.3", termenv.Ascii)

	assert.True(t, strings.HasSuffix(buf.String(), "helmsman v1.2.3\n"))
	assert.NotContains(t, buf.String(), "\x1b[")
}
