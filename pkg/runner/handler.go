package runner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
)

// LineHandler defines how the loop exchanges frames with the controller.
type LineHandler interface {
	// ReadLine blocks until one line is available and returns it without its
	// line terminator. It returns io.EOF once the input is exhausted.
	ReadLine(ctx context.Context) (string, error)

	// WriteLine writes one line followed by a newline and flushes it, so the
	// controller sees the response immediately.
	WriteLine(ctx context.Context, line string) error
}

// StreamHandler implements LineHandler over a reader and a writer.
type StreamHandler struct {
	Reader *bufio.Reader
	Writer *bufio.Writer
}

// NewStreamHandler creates a handler for line IO. Nil streams default to
// os.Stdin and os.Stdout.
func NewStreamHandler(r io.Reader, w io.Writer) *StreamHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &StreamHandler{
		Reader: bufio.NewReader(r),
		Writer: bufio.NewWriter(w),
	}
}

func (h *StreamHandler) ReadLine(ctx context.Context) (string, error) {
	text, err := h.Reader.ReadString('\n')
	if err != nil {
		// A last line without a terminator is still a line.
		if errors.Is(err, io.EOF) && text != "" {
			return strings.TrimRight(text, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

func (h *StreamHandler) WriteLine(ctx context.Context, line string) error {
	if _, err := h.Writer.WriteString(line); err != nil {
		return err
	}
	if err := h.Writer.WriteByte('\n'); err != nil {
		return err
	}
	return h.Writer.Flush()
}
