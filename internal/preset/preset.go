// Package preset provides colour preset storage and selection: the ordered
// preset store, the favourite-aware smart scorer, and selection history.
package preset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/prism/internal/colour"
)

// ErrNoFavorites is returned when a random or smart selection is requested
// with an empty favourite set.
var ErrNoFavorites = errors.New("no favorite presets to choose from")

// ErrUnknownPreset is returned when a preset name is not in the store.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named, complete terminal colour palette. Presets are immutable
// once loaded.
type Preset struct {
	Name    string
	Palette colour.Palette
	Dark    bool
}

// Brightness returns the preset's brightness, the relative luminance of its
// background colour.
func (p Preset) Brightness() float64 {
	return p.Palette.RelativeLuminance()
}

// Contrast returns the preset's foreground/background contrast in [0, 1].
func (p Preset) Contrast() float64 {
	return p.Palette.ContrastRatio()
}

// Store is an ordered collection of presets with lookup by name. It is
// read-only after loading.
type Store struct {
	order   []string
	presets map[string]Preset
}

// NewStore creates a store from an ordered list of presets. Duplicate names
// are rejected.
func NewStore(presets []Preset) (*Store, error) {
	s := &Store{presets: make(map[string]Preset, len(presets))}
	for _, p := range presets {
		if _, exists := s.presets[p.Name]; exists {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		if err := p.Palette.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		s.order = append(s.order, p.Name)
		s.presets[p.Name] = p
	}
	return s, nil
}

// Len returns the number of presets.
func (s *Store) Len() int {
	return len(s.order)
}

// Names returns the preset names in store order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// All returns the presets in store order.
func (s *Store) All() []Preset {
	out := make([]Preset, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.presets[name])
	}
	return out
}

// Get looks up a preset by name.
func (s *Store) Get(name string) (Preset, error) {
	p, ok := s.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
	}
	return p, nil
}

// Has reports whether the store contains a preset with the given name.
func (s *Store) Has(name string) bool {
	_, ok := s.presets[name]
	return ok
}

// Index returns the position of a preset name in store order, or -1.
func (s *Store) Index(name string) int {
	for i, n := range s.order {
		if n == name {
			return i
		}
	}
	return -1
}

// LightDarkAlternate returns the name of the corresponding light or dark
// variant of a preset, found by rewriting "light"/"dark" markers in the
// name, or "" when no such preset exists.
func (s *Store) LightDarkAlternate(name string) string {
	for _, pair := range [][2]string{{"light", "dark"}, {"dark", "light"}} {
		a, b := pair[0], pair[1]
		for _, c := range []string{a, "-" + a} {
			for _, d := range []string{b, "-" + b} {
				for _, replacement := range []string{"", d} {
					other := strings.ReplaceAll(name, c, replacement)
					if other != name && s.Has(other) {
						return other
					}
				}
			}
		}
	}
	return ""
}
