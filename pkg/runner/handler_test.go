package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamHandler_ReadLine(t *testing.T) {
	h := NewStreamHandler(strings.NewReader("first\nsecond\r\n\nlast"), nil)
	ctx := context.Background()

	for _, want := range []string{"first", "second", "", "last"} {
		got, err := h.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := h.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

// countingWriter records how many Write calls reach the underlying stream.
type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestStreamHandler_WriteLineFlushes(t *testing.T) {
	w := &countingWriter{}
	h := NewStreamHandler(strings.NewReader(""), w)

	require.NoError(t, h.WriteLine(context.Background(), "abc"))
	assert.Equal(t, "abc\n", w.String(), "line is visible before the next read")
	assert.Equal(t, 1, w.writes)

	require.NoError(t, h.WriteLine(context.Background(), "def"))
	assert.Equal(t, "abc\ndef\n", w.String())
	assert.Equal(t, 2, w.writes)
}

func TestParseRecovery(t *testing.T) {
	for in, want := range map[string]Recovery{
		"":           RecoverSkip,
		"skip":       RecoverSkip,
		" Terminate": RecoverTerminate,
		"FALLBACK":   RecoverFallback,
	} {
		got, err := ParseRecovery(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRecovery("retry")
	assert.Error(t, err)
}
