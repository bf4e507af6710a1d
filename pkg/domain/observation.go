package domain

import "encoding/json"

// Observation is the game state received at the start of a turn.
// The core never looks inside Payload; policies interpret it.
type Observation struct {
	// Payload is the decoded JSON value: map[string]any, []any or a scalar.
	Payload any

	// Raw holds the JSON bytes the payload was decoded from.
	Raw json.RawMessage
}

// Field returns a top-level field when the payload is a JSON object.
func (o Observation) Field(name string) (any, bool) {
	m, ok := o.Payload.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := m[name]
	return v, ok
}

// Fields returns the payload as an object, or nil if it is not one.
func (o Observation) Fields() map[string]any {
	m, _ := o.Payload.(map[string]any)
	return m
}
