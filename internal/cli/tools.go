package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/helmsman/internal/presentation/tui"
	"github.com/aretw0/helmsman/pkg/codec"
	"github.com/aretw0/helmsman/pkg/command"
	"github.com/aretw0/helmsman/pkg/runner"
)

// DecodeOptions configures Decode.
type DecodeOptions struct {
	Codec   *codec.Codec
	Command bool            // validate each payload as a command
	Profile termenv.Profile // termenv.Ascii disables colours
}

// Decode reads frames from in and pretty-prints their JSON payloads to out.
// Blank lines are ignored. The first bad frame stops the decoding.
func Decode(ctx context.Context, in io.Reader, out io.Writer, opts DecodeOptions) error {
	c := opts.Codec
	if c == nil {
		c = codec.New()
	}

	return eachLine(ctx, in, func(n int, line string) error {
		var raw []byte
		if opts.Command {
			cmd, err := c.DecodeCommand(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", n, err)
			}
			if raw, err = json.Marshal(cmd); err != nil {
				return fmt.Errorf("line %d: %w", n, err)
			}
		} else {
			obs, err := c.DecodeFrame(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", n, err)
			}
			raw = obs.Raw
		}
		return tui.WriteJSON(out, raw, opts.Profile)
	})
}

// Encode reads one JSON document per line from in and writes one frame per document to out.
// With asCommand set, each document must satisfy the command schema.
func Encode(ctx context.Context, in io.Reader, out io.Writer, c *codec.Codec, asCommand bool) error {
	if c == nil {
		c = codec.New()
	}

	return eachLine(ctx, in, func(n int, line string) error {
		dec := json.NewDecoder(strings.NewReader(line))
		dec.UseNumber()

		var doc any
		if err := dec.Decode(&doc); err != nil {
			return fmt.Errorf("line %d: invalid json: %w", n, err)
		}
		if dec.More() {
			return fmt.Errorf("line %d: more than one json document", n)
		}

		var frame string
		var err error
		if asCommand {
			cmd, verr := command.Validate(doc)
			if verr != nil {
				return fmt.Errorf("line %d: %w", n, verr)
			}
			frame, err = c.EncodeFrame(cmd)
		} else {
			frame, err = c.EncodeValue(doc)
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}

		_, err = fmt.Fprintln(out, frame)
		return err
	})
}

// eachLine feeds every non-blank line of in to fn, numbering lines from 1.
func eachLine(ctx context.Context, in io.Reader, fn func(n int, line string) error) error {
	handler := runner.NewStreamHandler(in, io.Discard)
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := handler.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
}
