// Package config loads the helmsman configuration from a file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/helmsman/internal/logging"
	"github.com/aretw0/helmsman/pkg/codec"
	"github.com/aretw0/helmsman/pkg/domain"
	"github.com/aretw0/helmsman/pkg/runner"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "helmsman.yaml"

// Policy kinds.
const (
	PolicyStatic  = "static"
	PolicyRandom  = "random"
	PolicyPursuit = "pursuit"
)

// Config is the full helmsman configuration.
type Config struct {
	Log      LogConfig     `yaml:"log" json:"log" toml:"log"`
	Codec    CodecConfig   `yaml:"codec" json:"codec" toml:"codec"`
	Recovery string        `yaml:"recovery" json:"recovery" toml:"recovery" env:"HELMSMAN_RECOVERY"`
	Fallback CommandConfig `yaml:"fallback" json:"fallback" toml:"fallback"`
	Policy   PolicyConfig  `yaml:"policy" json:"policy" toml:"policy"`
	Metrics  MetricsConfig `yaml:"metrics" json:"metrics" toml:"metrics"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level" toml:"level" env:"HELMSMAN_LOG_LEVEL"`
	Format string `yaml:"format" json:"format" toml:"format" env:"HELMSMAN_LOG_FORMAT"`
}

// CodecConfig tunes frame decoding. MaxFrameSize bounds an input line in
// bytes; 0 disables the limit.
type CodecConfig struct {
	MaxFrameSize int  `yaml:"max_frame_size" json:"max_frame_size" toml:"max_frame_size" env:"HELMSMAN_MAX_FRAME_SIZE"`
	Lenient      bool `yaml:"lenient" json:"lenient" toml:"lenient" env:"HELMSMAN_LENIENT"`
}

// CommandConfig is a command written literally in the config file.
type CommandConfig struct {
	Name        string  `yaml:"name" json:"name" toml:"name"`
	Thrust      float64 `yaml:"thrust" json:"thrust" toml:"thrust"`
	Torque      float64 `yaml:"torque" json:"torque" toml:"torque"`
	MetalBullet bool    `yaml:"metal_bullet" json:"metal_bullet" toml:"metal_bullet"`
	LaserBullet bool    `yaml:"laser_bullet" json:"laser_bullet" toml:"laser_bullet"`
}

// Command converts the literal into a domain command.
func (c CommandConfig) Command() domain.Command {
	return domain.Command{
		Name:        c.Name,
		Thrust:      c.Thrust,
		Torque:      c.Torque,
		MetalBullet: c.MetalBullet,
		LaserBullet: c.LaserBullet,
	}
}

// PolicyConfig selects and tunes the decision policy.
// Thrust and Torque are shared by static (fixed values) and pursuit (chase thrust, torque bound).
type PolicyConfig struct {
	Kind        string  `yaml:"kind" json:"kind" toml:"kind" env:"HELMSMAN_POLICY"`
	Name        string  `yaml:"name" json:"name" toml:"name" env:"HELMSMAN_SHIP_NAME"`
	Thrust      float64 `yaml:"thrust" json:"thrust" toml:"thrust" env:"HELMSMAN_THRUST"`
	Torque      float64 `yaml:"torque" json:"torque" toml:"torque" env:"HELMSMAN_TORQUE"`
	MetalBullet bool    `yaml:"metal_bullet" json:"metal_bullet" toml:"metal_bullet"`
	LaserBullet bool    `yaml:"laser_bullet" json:"laser_bullet" toml:"laser_bullet"`

	// random
	MaxThrust float64 `yaml:"max_thrust" json:"max_thrust" toml:"max_thrust"`
	MaxTorque float64 `yaml:"max_torque" json:"max_torque" toml:"max_torque"`
	FireRate  float64 `yaml:"fire_rate" json:"fire_rate" toml:"fire_rate"`
	Seed      uint64  `yaml:"seed" json:"seed" toml:"seed" env:"HELMSMAN_SEED"`

	// pursuit
	Gain         float64 `yaml:"gain" json:"gain" toml:"gain"`
	AimTolerance float64 `yaml:"aim_tolerance" json:"aim_tolerance" toml:"aim_tolerance"`
	LaserRange   float64 `yaml:"laser_range" json:"laser_range" toml:"laser_range"`
}

type MetricsConfig struct {
	File string `yaml:"file" json:"file" toml:"file" env:"HELMSMAN_METRICS_FILE"`
}

// Default returns the configuration used when nothing else is specified.
// The static command matches the reference bot: {"name":"hi","thrust":1.9,"torque":2.0}.
func Default() Config {
	return Config{
		Log:      LogConfig{Level: "info", Format: "text"},
		Codec:    CodecConfig{MaxFrameSize: codec.DefaultMaxFrameSize},
		Recovery: string(runner.RecoverSkip),
		Policy: PolicyConfig{
			Kind:         PolicyStatic,
			Name:         "hi",
			Thrust:       1.9,
			Torque:       2.0,
			MaxThrust:    2.0,
			MaxTorque:    2.0,
			FireRate:     0.1,
			Gain:         2.0,
			AimTolerance: 0.1,
			LaserRange:   128,
		},
	}
}

// Load reads the file at path on top of the defaults, then applies HELMSMAN_* environment overrides.
// A missing file at DefaultPath is not an error; any other missing path is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	if err := decodeFile(path, &cfg); err != nil {
		if !(errors.Is(err, os.ErrNotExist) && path == DefaultPath) {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".toml" {
		meta, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		// Default to YAML
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return nil
}

// Validate checks enums and bounds. All problems are reported together.
func (c Config) Validate() error {
	var errs []error

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q (want text or json)", c.Log.Format))
	}

	if c.Codec.MaxFrameSize < 0 {
		errs = append(errs, fmt.Errorf("codec.max_frame_size must not be negative (got %d)", c.Codec.MaxFrameSize))
	}

	recovery, err := runner.ParseRecovery(c.Recovery)
	if err != nil {
		errs = append(errs, err)
	}
	if recovery == runner.RecoverFallback {
		if err := checkFinite("fallback.thrust", c.Fallback.Thrust); err != nil {
			errs = append(errs, err)
		}
		if err := checkFinite("fallback.torque", c.Fallback.Torque); err != nil {
			errs = append(errs, err)
		}
	}

	p := c.Policy
	switch strings.ToLower(p.Kind) {
	case PolicyStatic:
		for name, v := range map[string]float64{"policy.thrust": p.Thrust, "policy.torque": p.Torque} {
			if err := checkFinite(name, v); err != nil {
				errs = append(errs, err)
			}
		}
	case PolicyRandom:
		if p.FireRate < 0 || p.FireRate > 1 {
			errs = append(errs, fmt.Errorf("policy.fire_rate must be within [0, 1] (got %v)", p.FireRate))
		}
		for name, v := range map[string]float64{"policy.max_thrust": p.MaxThrust, "policy.max_torque": p.MaxTorque} {
			if err := checkNonNegative(name, v); err != nil {
				errs = append(errs, err)
			}
		}
	case PolicyPursuit:
		for name, v := range map[string]float64{
			"policy.thrust":        p.Thrust,
			"policy.torque":        p.Torque,
			"policy.gain":          p.Gain,
			"policy.aim_tolerance": p.AimTolerance,
			"policy.laser_range":   p.LaserRange,
		} {
			if err := checkNonNegative(name, v); err != nil {
				errs = append(errs, err)
			}
		}
	default:
		errs = append(errs, fmt.Errorf("unknown policy kind %q (want static, random or pursuit)", p.Kind))
	}

	return errors.Join(errs...)
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite (got %v)", name, v)
	}
	return nil
}

func checkNonNegative(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%s must not be negative (got %v)", name, v)
	}
	return nil
}
