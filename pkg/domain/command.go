package domain

import "encoding/json"

// Command wire keys, in canonical order.
const (
	KeyName        = "name"
	KeyThrust      = "thrust"
	KeyTorque      = "torque"
	KeyMetalBullet = "metal_bullet"
	KeyLaserBullet = "laser_bullet"
)

// CommandKeys lists the required command keys in the order they are checked.
var CommandKeys = []string{KeyName, KeyThrust, KeyTorque, KeyMetalBullet, KeyLaserBullet}

// Command is the ship control record sent back to the controller each turn.
// Values should be obtained through command.Validate so that every emitted
// command is known to satisfy the schema.
type Command struct {
	Name        string  `json:"name" mapstructure:"name"`
	Thrust      float64 `json:"thrust" mapstructure:"thrust"`
	Torque      float64 `json:"torque" mapstructure:"torque"`
	MetalBullet bool    `json:"metal_bullet" mapstructure:"metal_bullet"`
	LaserBullet bool    `json:"laser_bullet" mapstructure:"laser_bullet"`

	// Extra carries additional keys returned by a policy. They are written to
	// the wire next to the fixed keys, which always take precedence.
	Extra map[string]any `json:"-" mapstructure:",remain"`
}

// Map returns the command as a flat map, extras included.
func (c Command) Map() map[string]any {
	m := make(map[string]any, len(CommandKeys)+len(c.Extra))
	for k, v := range c.Extra {
		m[k] = v
	}
	m[KeyName] = c.Name
	m[KeyThrust] = c.Thrust
	m[KeyTorque] = c.Torque
	m[KeyMetalBullet] = c.MetalBullet
	m[KeyLaserBullet] = c.LaserBullet
	return m
}

// MarshalJSON encodes the fixed fields and the extras as one JSON object.
func (c Command) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Map())
}
