package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/helmsman/pkg/command"
	"github.com/aretw0/helmsman/pkg/domain"
)

var (
	// DefaultMaxFrameSize is 1MiB, enough for a kinematics broadcast of a crowded arena.
	DefaultMaxFrameSize = 1 << 20
	// EnvMaxFrameSize is the environment variable to override the default.
	EnvMaxFrameSize = "HELMSMAN_MAX_FRAME_SIZE"
)

var (
	ErrFrameTooLarge = errors.New("frame exceeds maximum allowed size")
	ErrTrailingData  = errors.New("unexpected data after JSON value")
)

// Codec encodes and decodes frames.
type Codec struct {
	maxFrameSize int
	lenient      bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithMaxFrameSize limits the length of an incoming line. Zero or negative disables the limit.
func WithMaxFrameSize(n int) Option {
	return func(c *Codec) {
		c.maxFrameSize = n
	}
}

// WithLenient makes decoding accept the Python bytes literal wrapper (b'...')
// and unpadded base64.
func WithLenient(lenient bool) Option {
	return func(c *Codec) {
		c.lenient = lenient
	}
}

// New creates a Codec. The frame size limit defaults to DefaultMaxFrameSize,
// or to the value of HELMSMAN_MAX_FRAME_SIZE when set.
func New(opts ...Option) *Codec {
	c := &Codec{maxFrameSize: maxFrameSizeFromEnv()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = New()

// DecodeFrame decodes a line with the default codec.
func DecodeFrame(line string) (domain.Observation, error) {
	return defaultCodec.DecodeFrame(line)
}

// EncodeFrame encodes a command with the default codec.
func EncodeFrame(cmd domain.Command) (string, error) {
	return defaultCodec.EncodeFrame(cmd)
}

// DecodeCommand decodes a line with the default codec and validates it as a command.
func DecodeCommand(line string) (domain.Command, error) {
	return defaultCodec.DecodeCommand(line)
}

// DecodeFrame turns one line into an Observation. No partial result is
// returned on failure.
func (c *Codec) DecodeFrame(line string) (domain.Observation, error) {
	raw, err := c.unwrap(line)
	if err != nil {
		return domain.Observation{}, &domain.DecodeError{Err: err}
	}

	payload, err := parseJSON(raw)
	if err != nil {
		return domain.Observation{}, &domain.ParseError{Err: err}
	}
	return domain.Observation{Payload: payload, Raw: raw}, nil
}

// EncodeFrame turns a command into one line, without the trailing newline.
// The command is checked against the schema first, so a frame that would not
// decode back to the same command is never written.
func (c *Codec) EncodeFrame(cmd domain.Command) (string, error) {
	checked, err := command.Validate(cmd)
	if err != nil {
		return "", err
	}
	return c.EncodeValue(checked)
}

// EncodeValue frames any JSON-marshalable value. Controllers use it to frame observations.
func (c *Codec) EncodeValue(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode frame: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeCommand decodes a line and validates the payload against the command schema.
func (c *Codec) DecodeCommand(line string) (domain.Command, error) {
	obs, err := c.DecodeFrame(line)
	if err != nil {
		return domain.Command{}, err
	}
	return command.Validate(obs.Payload)
}

func (c *Codec) unwrap(line string) ([]byte, error) {
	if c.maxFrameSize > 0 && len(line) > c.maxFrameSize {
		return nil, fmt.Errorf("%w: size=%d limit=%d", ErrFrameTooLarge, len(line), c.maxFrameSize)
	}

	text := strings.TrimSpace(line)
	if c.lenient {
		text = stripBytesLiteral(text)
		if len(text)%4 != 0 {
			return base64.RawStdEncoding.DecodeString(strings.TrimRight(text, "="))
		}
	}
	return base64.StdEncoding.DecodeString(text)
}

// stripBytesLiteral removes a b'...' or b"..." wrapper, which is what
// print(base64.b64encode(...)) writes in Python 3.
func stripBytesLiteral(text string) string {
	if len(text) < 3 || text[0] != 'b' {
		return text
	}
	quote := text[1]
	if (quote != '\'' && quote != '"') || text[len(text)-1] != quote {
		return text
	}
	return text[2 : len(text)-1]
}

func parseJSON(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	var payload any
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty payload")
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return payload, nil
}

func maxFrameSizeFromEnv() int {
	if val := os.Getenv(EnvMaxFrameSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxFrameSize
}
