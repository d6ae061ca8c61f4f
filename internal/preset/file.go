package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/prism/internal/colour"
)

// presetFile is the on-disk YAML representation of a preset collection.
type presetFile struct {
	Presets []presetEntry `yaml:"presets"`
}

type presetEntry struct {
	Name    string            `yaml:"name"`
	Dark    *bool             `yaml:"dark,omitempty"`
	Colors  map[string]string `yaml:"colors"`
}

// Parse decodes a preset collection from YAML data. Each entry must have a
// unique name and a palette containing at least the fg and bg slots. A
// missing dark flag is derived from the background brightness.
func Parse(data []byte) ([]Preset, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	presets := make([]Preset, 0, len(file.Presets))
	for _, entry := range file.Presets {
		if entry.Name == "" {
			return nil, fmt.Errorf("preset entry missing name")
		}
		palette := make(colour.Palette, len(entry.Colors))
		for slot, hex := range entry.Colors {
			c, err := colour.ParseHex(hex)
			if err != nil {
				return nil, fmt.Errorf("preset %q slot %q: %w", entry.Name, slot, err)
			}
			palette[colour.Slot(slot)] = c
		}
		if err := palette.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", entry.Name, err)
		}
		dark := palette.RelativeLuminance() < 0.5
		if entry.Dark != nil {
			dark = *entry.Dark
		}
		presets = append(presets, Preset{Name: entry.Name, Palette: palette, Dark: dark})
	}
	return presets, nil
}

// LoadFile reads a preset collection from a YAML file and builds a store.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified presets file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}
	presets, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewStore(presets)
}

// Merge combines presets into the contents of an existing store, with
// incoming presets replacing same-named existing ones. The result preserves
// the original order for retained presets and appends new ones in their
// incoming order.
func Merge(existing *Store, incoming []Preset) (*Store, error) {
	replacements := make(map[string]Preset, len(incoming))
	for _, p := range incoming {
		replacements[p.Name] = p
	}
	merged := make([]Preset, 0, existing.Len()+len(incoming))
	for _, p := range existing.All() {
		if r, ok := replacements[p.Name]; ok {
			merged = append(merged, r)
			delete(replacements, p.Name)
		} else {
			merged = append(merged, p)
		}
	}
	for _, p := range incoming {
		if _, pending := replacements[p.Name]; pending {
			merged = append(merged, p)
			delete(replacements, p.Name)
		}
	}
	return NewStore(merged)
}

// WriteFile serialises a store back to YAML and writes it with a whole-file
// replace.
func WriteFile(path string, store *Store) error {
	file := presetFile{Presets: make([]presetEntry, 0, store.Len())}
	for _, p := range store.All() {
		colors := make(map[string]string, len(p.Palette))
		for slot, c := range p.Palette {
			colors[string(slot)] = c.Hex()
		}
		dark := p.Dark
		file.Presets = append(file.Presets, presetEntry{
			Name:   p.Name,
			Dark:   &dark,
			Colors: colors,
		})
	}
	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to encode presets: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write presets file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace presets file: %w", err)
	}
	return nil
}
