package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	def := Default()
	if cfg.Animation.Frames != def.Animation.Frames {
		t.Errorf("frames = %d, want default %d", cfg.Animation.Frames, def.Animation.Frames)
	}
	if cfg.Smart.AvoidRepeat != def.Smart.AvoidRepeat {
		t.Errorf("avoid_repeat = %d, want default %d", cfg.Smart.AvoidRepeat, def.Smart.AvoidRepeat)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
animation:
  frames: 10
smart:
  sun_weight: 3.5
  sun_bimodal: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Animation.Frames != 10 {
		t.Errorf("frames = %d, want 10", cfg.Animation.Frames)
	}
	if cfg.Animation.Sleep != Default().Animation.Sleep {
		t.Errorf("sleep = %v, want untouched default", cfg.Animation.Sleep)
	}
	if cfg.Smart.SunWeight != 3.5 || !cfg.Smart.SunBimodal {
		t.Errorf("smart section not overlaid: %+v", cfg.Smart)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "zero frames",
			mutate:  func(c *Config) { c.Animation.Frames = 0 },
			wantKey: "animation.frames",
		},
		{
			name:    "negative sleep",
			mutate:  func(c *Config) { c.Animation.Sleep = -1 },
			wantKey: "animation.sleep",
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Smart.DisplayWeight = -0.5 },
			wantKey: "smart.display_weight",
		},
		{
			name:    "inverted window",
			mutate:  func(c *Config) { c.Smart.SunMin = 0.9; c.Smart.SunMax = 0.1 },
			wantKey: "smart.sun_min",
		},
		{
			name:    "window out of unit range",
			mutate:  func(c *Config) { c.Smart.DisplayMax = 1.5 },
			wantKey: "smart.display_min",
		},
		{
			name:    "negative display number",
			mutate:  func(c *Config) { c.Smart.DisplayNumber = -1 },
			wantKey: "smart.display_number",
		},
		{
			name:    "negative avoid repeat",
			mutate:  func(c *Config) { c.Smart.AvoidRepeat = -3 },
			wantKey: "smart.avoid_repeat",
		},
		{
			name: "latitude out of range",
			mutate: func(c *Config) {
				lat, lon := 120.0, 10.0
				c.Location.Latitude = &lat
				c.Location.Longitude = &lon
			},
			wantKey: "location.latitude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantKey == "" {
				if err != nil {
					t.Fatalf("Validate failed: %v", err)
				}
				return
			}
			var cfgErr *Error
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate returned %T (%v), want *Error", err, err)
			}
			if !strings.Contains(cfgErr.Key, tt.wantKey) {
				t.Errorf("error names key %q, want it to mention %q", cfgErr.Key, tt.wantKey)
			}
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "animation: [not a mapping")
	_, err := Load(path)
	var cfgErr *Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load of malformed file returned %T (%v), want *Error", err, err)
	}
}

func TestTransitionAnimation(t *testing.T) {
	cfg := Default()
	cfg.Animation = Animation{Frames: 4, Sleep: 12.5, ResetDelay: 250}
	anim := cfg.TransitionAnimation()
	if anim.Frames != 4 {
		t.Errorf("frames = %d, want 4", anim.Frames)
	}
	if anim.Sleep != 12500*time.Microsecond {
		t.Errorf("sleep = %v, want 12.5ms", anim.Sleep)
	}
	if anim.ResetDelay != 250*time.Millisecond {
		t.Errorf("reset delay = %v, want 250ms", anim.ResetDelay)
	}
}
