package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode matches any DecodeError.
	ErrDecode = errors.New("invalid frame encoding")
	// ErrParse matches any ParseError.
	ErrParse = errors.New("malformed frame payload")
	// ErrSchema matches any SchemaError.
	ErrSchema = errors.New("command schema violation")
)

// DecodeError reports a line that is not valid base64 text.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode frame: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// ParseError reports decoded bytes that are not a single well-formed JSON value.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse frame: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// SchemaError reports a candidate command that does not satisfy the schema.
// Field names the first offending field in canonical order.
type SchemaError struct {
	Field      string
	Reason     string
	Violations []error
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("command schema: %s", e.Reason)
	}
	if n := len(e.Violations); n > 1 {
		return fmt.Sprintf("command schema: field %q: %s (and %d more)", e.Field, e.Reason, n-1)
	}
	return fmt.Sprintf("command schema: field %q: %s", e.Field, e.Reason)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }
