package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/muesli/termenv"
)

// Palette for pretty-printed JSON.
const (
	keyColor     = "#93c5fd"
	stringColor  = "#86efac"
	numberColor  = "#fcd34d"
	literalColor = "#f9a8d4"
)

// jsonLine splits one line of indented JSON into indent, object key, and the remaining token.
var jsonLine = regexp.MustCompile(`^(\s*)("(?:[^"\\]|\\.)*":\s)?(.*)$`)

// WriteJSON pretty-prints one JSON document to w, colouring keys and scalar values
// according to profile. termenv.Ascii yields plain indented JSON.
func WriteJSON(w io.Writer, raw []byte, profile termenv.Profile) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("indent json: %w", err)
	}

	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	for _, line := range strings.Split(buf.String(), "\n") {
		m := jsonLine.FindStringSubmatch(line)
		indent, key, rest := m[1], m[2], m[3]

		var sb strings.Builder
		sb.WriteString(indent)
		if key != "" {
			name := strings.TrimRight(key, ": ")
			sb.WriteString(out.String(name).Foreground(out.Color(keyColor)).String())
			sb.WriteString(": ")
		}
		sb.WriteString(colorValue(out, rest))
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func colorValue(out *termenv.Output, token string) string {
	value, comma := strings.CutSuffix(token, ",")

	var color string
	switch {
	case value == "":
		return token
	case strings.HasPrefix(value, `"`):
		color = stringColor
	case value == "true" || value == "false" || value == "null":
		color = literalColor
	case strings.ContainsAny(value[:1], "-0123456789"):
		color = numberColor
	default:
		// brackets
		return token
	}

	s := out.String(value).Foreground(out.Color(color)).String()
	if comma {
		s += ","
	}
	return s
}
