// Package files manages prism's on-disk state: XDG paths, the favourites
// file, and the record of the currently applied preset. Every write is a
// whole-file replace.
package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Paths produces locations for config and data files following the XDG
// Base Directory Specification.
type Paths struct {
	ConfigDir string
	DataDir   string
}

// XDG returns the standard paths for the given application subdirectory.
func XDG(subdir string) Paths {
	home, _ := os.UserHomeDir()
	configBase := os.Getenv("XDG_CONFIG_HOME")
	if configBase == "" {
		configBase = filepath.Join(home, ".config")
	}
	dataBase := os.Getenv("XDG_DATA_HOME")
	if dataBase == "" {
		dataBase = filepath.Join(home, ".local", "share")
	}
	return Paths{
		ConfigDir: filepath.Join(configBase, subdir),
		DataDir:   filepath.Join(dataBase, subdir),
	}
}

// Config returns the path of a config file.
func (p Paths) Config(name string) string {
	return filepath.Join(p.ConfigDir, name)
}

// Data returns the path of a data file.
func (p Paths) Data(name string) string {
	return filepath.Join(p.DataDir, name)
}

// readLines reads a newline-separated file, dropping blank lines.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - Application state file under the XDG dirs
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// writeLines replaces a file with the given lines, creating parent
// directories as needed. The replace is atomic: content is written to a
// temporary file first and renamed into place.
func writeLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Favorites is the ordered set of favourite preset names, backed by a flat
// file. Order is the order in which presets were favourited.
type Favorites struct {
	path  string
	names []string
}

// LoadFavorites reads the favourites file. A missing file yields an empty
// set.
func LoadFavorites(path string) (*Favorites, error) {
	names, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	f := &Favorites{path: path}
	for _, name := range names {
		if !f.Contains(name) {
			f.names = append(f.names, name)
		}
	}
	return f, nil
}

// Names returns the favourite names in insertion order.
func (f *Favorites) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Len returns the number of favourites.
func (f *Favorites) Len() int {
	return len(f.names)
}

// Contains reports whether name is a favourite.
func (f *Favorites) Contains(name string) bool {
	for _, n := range f.names {
		if n == name {
			return true
		}
	}
	return false
}

// Add appends a favourite and persists the set. Adding an existing
// favourite is a no-op.
func (f *Favorites) Add(name string) error {
	if f.Contains(name) {
		return nil
	}
	f.names = append(f.names, name)
	return f.save()
}

// Remove deletes a favourite and persists the set. Removing an unknown name
// is a no-op.
func (f *Favorites) Remove(name string) error {
	for i, n := range f.names {
		if n == name {
			f.names = append(f.names[:i], f.names[i+1:]...)
			return f.save()
		}
	}
	return nil
}

// Prune drops favourites not present in keep, persisting only if something
// was dropped. It returns the removed names.
func (f *Favorites) Prune(keep func(string) bool) ([]string, error) {
	var kept, removed []string
	for _, name := range f.names {
		if keep(name) {
			kept = append(kept, name)
		} else {
			removed = append(removed, name)
		}
	}
	if len(removed) == 0 {
		return nil, nil
	}
	f.names = kept
	if err := f.save(); err != nil {
		return removed, err
	}
	return removed, nil
}

func (f *Favorites) save() error {
	return writeLines(f.path, f.names)
}

// Current tracks the name of the preset most recently applied to the
// terminal, stored as a one-line data file.
type Current struct {
	path string
}

// NewCurrent creates the current-preset record at path.
func NewCurrent(path string) *Current {
	return &Current{path: path}
}

// Get returns the recorded preset name, or "" when none was recorded yet.
func (c *Current) Get() (string, error) {
	lines, err := readLines(c.path)
	if err != nil {
		return "", fmt.Errorf("failed to read current preset: %w", err)
	}
	if len(lines) == 0 {
		return "", nil
	}
	return lines[0], nil
}

// Set records the preset name.
func (c *Current) Set(name string) error {
	return writeLines(c.path, []string{name})
}
