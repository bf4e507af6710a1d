package testutils

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/helmsman/pkg/codec"
	"github.com/aretw0/helmsman/pkg/domain"
)

// Frame base64-encodes a raw JSON document exactly as the controller would send it.
// The document is not re-marshaled, so malformed JSON can be framed on purpose.
func Frame(doc string) string {
	return base64.StdEncoding.EncodeToString([]byte(doc))
}

// FrameOf marshals v and frames it. It fails the test immediately on error.
func FrameOf(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err, "Failed to marshal frame payload")
	return Frame(string(data))
}

// Stream joins frames into newline-terminated input.
func Stream(frames ...string) string {
	if len(frames) == 0 {
		return ""
	}
	return strings.Join(frames, "\n") + "\n"
}

// Commands decodes every line written by a bot into commands.
// It fails the test immediately if any line is not a valid command frame.
func Commands(t *testing.T, output string) []domain.Command {
	t.Helper()

	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return nil
	}

	var cmds []domain.Command
	for i, line := range strings.Split(output, "\n") {
		cmd, err := codec.DecodeCommand(line)
		require.NoError(t, err, "line %d is not a command frame", i+1)
		cmds = append(cmds, cmd)
	}
	return cmds
}
