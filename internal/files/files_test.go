package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFavoritesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites")

	f, err := LoadFavorites(path)
	if err != nil {
		t.Fatalf("LoadFavorites on missing file failed: %v", err)
	}
	if f.Len() != 0 {
		t.Fatalf("missing file should load as empty, got %v", f.Names())
	}

	for _, name := range []string{"nord", "dracula", "solarized-dark"} {
		if err := f.Add(name); err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
	}

	reloaded, err := LoadFavorites(path)
	if err != nil {
		t.Fatalf("LoadFavorites failed: %v", err)
	}
	want := []string{"nord", "dracula", "solarized-dark"}
	got := reloaded.Names()
	if len(got) != len(want) {
		t.Fatalf("reloaded favorites = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("favorites[%d] = %q, want %q (insertion order must persist)", i, got[i], want[i])
		}
	}
}

func TestFavoritesToggleIdempotence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites")
	f, _ := LoadFavorites(path)
	if err := f.Add("nord"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Toggling twice restores the original set.
	if err := f.Add("dracula"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := f.Remove("dracula"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if f.Len() != 1 || !f.Contains("nord") {
		t.Errorf("favorites after toggle = %v, want [nord]", f.Names())
	}

	// Duplicate add and unknown remove are no-ops.
	if err := f.Add("nord"); err != nil {
		t.Fatalf("duplicate Add failed: %v", err)
	}
	if err := f.Remove("missing"); err != nil {
		t.Fatalf("Remove of unknown name failed: %v", err)
	}
	if f.Len() != 1 {
		t.Errorf("favorites = %v, want exactly [nord]", f.Names())
	}
}

func TestFavoritesPrune(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites")
	f, _ := LoadFavorites(path)
	for _, name := range []string{"keep", "stale", "also-keep"} {
		if err := f.Add(name); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	removed, err := f.Prune(func(name string) bool { return name != "stale" })
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if len(removed) != 1 || removed[0] != "stale" {
		t.Errorf("Prune removed %v, want [stale]", removed)
	}

	reloaded, _ := LoadFavorites(path)
	if reloaded.Contains("stale") {
		t.Error("pruned favourite survived the reload")
	}
	if !reloaded.Contains("keep") || !reloaded.Contains("also-keep") {
		t.Errorf("prune dropped too much: %v", reloaded.Names())
	}
}

func TestCurrent(t *testing.T) {
	c := NewCurrent(filepath.Join(t.TempDir(), "data", "current"))

	name, err := c.Get()
	if err != nil || name != "" {
		t.Fatalf("Get on missing file = %q, %v; want empty, nil", name, err)
	}

	if err := c.Set("gruvbox"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	name, err = c.Get()
	if err != nil || name != "gruvbox" {
		t.Errorf("Get = %q, %v; want gruvbox, nil", name, err)
	}
}

func TestWriteLinesAtomicReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := writeLines(path, []string{"a", "b"}); err != nil {
		t.Fatalf("writeLines failed: %v", err)
	}
	if err := writeLines(path, []string{"c"}); err != nil {
		t.Fatalf("writeLines failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "c\n" {
		t.Errorf("file content = %q, want %q", data, "c\n")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}
