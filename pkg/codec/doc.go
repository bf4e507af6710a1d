/*
Package codec implements the line framing used between the game controller and a bot.

A frame is one line of text: the standard base64 encoding of a UTF-8 JSON document.
Decoding runs in two stages and fails with a distinct error per stage:

  - base64 text -> bytes, failing with *domain.DecodeError;
  - bytes -> one JSON value, failing with *domain.ParseError.

Encoding is the exact inverse: a validated domain.Command is marshalled to JSON and the
bytes are base64 encoded. Only semantic equality survives a round trip; key order and
number formatting may change.

# Usage

	obs, err := codec.DecodeFrame(line)
	if err != nil {
		// errors.Is(err, domain.ErrDecode) or errors.Is(err, domain.ErrParse)
	}

	line, err := codec.EncodeFrame(cmd)
*/
package codec
