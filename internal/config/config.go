// Package config loads and validates prism's YAML configuration. Parsing
// and range checking happen up front so the selection and transition
// engines only ever see valid values.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/prism/internal/preset"
	"github.com/jmylchreest/prism/internal/terminal"
)

// Error describes a malformed or out-of-range config value. It is fatal and
// surfaced before any engine action.
type Error struct {
	Key    string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s config: %s", e.Key, e.Reason)
}

// Animation configures palette transitions. Sleep and ResetDelay are in
// milliseconds.
type Animation struct {
	Frames     int     `yaml:"frames"`
	Sleep      float64 `yaml:"sleep"`
	ResetDelay float64 `yaml:"reset_delay"`
}

// Smart configures the smart selection scorer.
type Smart struct {
	SunWeight     float64 `yaml:"sun_weight"`
	DisplayWeight float64 `yaml:"display_weight"`
	RandomWeight  float64 `yaml:"random_weight"`

	SunBimodal bool    `yaml:"sun_bimodal"`
	SunOffset  float64 `yaml:"sun_offset"`
	SunMin     float64 `yaml:"sun_min"`
	SunMax     float64 `yaml:"sun_max"`

	DisplayNumber int     `yaml:"display_number"`
	DisplayOffset float64 `yaml:"display_offset"`
	DisplayMin    float64 `yaml:"display_min"`
	DisplayMax    float64 `yaml:"display_max"`

	AvoidRepeat int `yaml:"avoid_repeat"`
}

// Location configures the sun probe: fixed coordinates, or a locateme-style
// command that prints "LAT LON".
type Location struct {
	Latitude  *float64 `yaml:"latitude,omitempty"`
	Longitude *float64 `yaml:"longitude,omitempty"`
	Command   []string `yaml:"command,omitempty"`
}

// Fixed reports whether explicit coordinates are configured.
func (l Location) Fixed() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Presets configures where the preset collection lives.
type Presets struct {
	File string `yaml:"file"`
}

// Config is the whole application configuration.
type Config struct {
	Animation Animation `yaml:"animation"`
	Smart     Smart     `yaml:"smart"`
	Location  Location  `yaml:"location"`
	Presets   Presets   `yaml:"presets"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Animation: Animation{
			Frames:     50,
			Sleep:      50,
			ResetDelay: 500,
		},
		Smart: Smart{
			SunWeight:     1,
			DisplayWeight: 1,
			RandomWeight:  0.5,
			SunMin:        0,
			SunMax:        1,
			DisplayMin:    0,
			DisplayMax:    1,
			AvoidRepeat:   2,
		},
	}
}

// Load reads the config file at path over the defaults. A missing file
// yields the defaults; a malformed or out-of-range file is a fatal Error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path) // #nosec G304 - User config file under the XDG config dir
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &Error{Key: path, Reason: fmt.Sprintf("malformed config file (%v)", err)}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every numeric value's range.
func (c Config) Validate() error {
	if c.Animation.Frames < 1 {
		return &Error{Key: "animation.frames", Reason: "must be at least 1"}
	}
	if c.Animation.Sleep < 0 {
		return &Error{Key: "animation.sleep", Reason: "must not be negative"}
	}
	if c.Animation.ResetDelay < 0 {
		return &Error{Key: "animation.reset_delay", Reason: "must not be negative"}
	}

	weights := []struct {
		key   string
		value float64
	}{
		{"smart.sun_weight", c.Smart.SunWeight},
		{"smart.display_weight", c.Smart.DisplayWeight},
		{"smart.random_weight", c.Smart.RandomWeight},
	}
	for _, w := range weights {
		if w.value < 0 {
			return &Error{Key: w.key, Reason: "must not be negative"}
		}
	}

	windows := []struct {
		key      string
		min, max float64
	}{
		{"smart.sun_min/sun_max", c.Smart.SunMin, c.Smart.SunMax},
		{"smart.display_min/display_max", c.Smart.DisplayMin, c.Smart.DisplayMax},
	}
	for _, w := range windows {
		if w.min < 0 || w.max > 1 || w.min > w.max {
			return &Error{Key: w.key, Reason: "must satisfy 0 <= min <= max <= 1"}
		}
	}

	if c.Smart.DisplayNumber < 0 {
		return &Error{Key: "smart.display_number", Reason: "must not be negative"}
	}
	if c.Smart.AvoidRepeat < 0 {
		return &Error{Key: "smart.avoid_repeat", Reason: "must not be negative"}
	}
	if c.Location.Fixed() {
		if *c.Location.Latitude < -90 || *c.Location.Latitude > 90 {
			return &Error{Key: "location.latitude", Reason: "must be between -90 and 90"}
		}
		if *c.Location.Longitude < -180 || *c.Location.Longitude > 180 {
			return &Error{Key: "location.longitude", Reason: "must be between -180 and 180"}
		}
	}
	return nil
}

// Weights converts the smart section into scorer weights.
func (c Config) Weights() preset.Weights {
	return preset.Weights{
		Sun:           c.Smart.SunWeight,
		Display:       c.Smart.DisplayWeight,
		Random:        c.Smart.RandomWeight,
		SunBimodal:    c.Smart.SunBimodal,
		SunOffset:     c.Smart.SunOffset,
		SunMin:        c.Smart.SunMin,
		SunMax:        c.Smart.SunMax,
		DisplayOffset: c.Smart.DisplayOffset,
		DisplayMin:    c.Smart.DisplayMin,
		DisplayMax:    c.Smart.DisplayMax,
	}
}

// TransitionAnimation converts the animation section into the transition
// engine's timing configuration.
func (c Config) TransitionAnimation() terminal.Animation {
	return terminal.Animation{
		Frames:     c.Animation.Frames,
		Sleep:      time.Duration(c.Animation.Sleep * float64(time.Millisecond)),
		ResetDelay: time.Duration(c.Animation.ResetDelay * float64(time.Millisecond)),
	}
}
