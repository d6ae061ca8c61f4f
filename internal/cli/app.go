package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/prism/internal/config"
	"github.com/jmylchreest/prism/internal/files"
	"github.com/jmylchreest/prism/internal/preset"
	"github.com/jmylchreest/prism/internal/probe"
)

// app bundles the loaded configuration and state shared by all commands.
type app struct {
	cfg       config.Config
	paths     files.Paths
	logger    hclog.Logger
	store     *preset.Store
	favorites *files.Favorites
	current   *files.Current
}

// loadApp reads config and state files. Config errors are fatal and
// surfaced before any engine action.
func loadApp() (*app, error) {
	paths := files.XDG("prism")
	configPath := flagConfig
	if configPath == "" {
		configPath = paths.Config("config.yaml")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := newLogger()

	presetsPath := cfg.Presets.File
	if presetsPath == "" {
		presetsPath = paths.Config("presets.yaml")
	}
	store, err := preset.LoadFile(presetsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no presets found at %s (add some or import a bundle)", presetsPath)
		}
		return nil, err
	}

	favorites, err := files.LoadFavorites(paths.Config("favorites"))
	if err != nil {
		return nil, err
	}
	// Favourites must stay a subset of the store's preset names.
	removed, err := favorites.Prune(store.Has)
	if err != nil {
		return nil, err
	}
	for _, name := range removed {
		logger.Warn("dropped favorite not present in presets", "name", name)
	}

	return &app{
		cfg:       cfg,
		paths:     paths,
		logger:    logger,
		store:     store,
		favorites: favorites,
		current:   files.NewCurrent(paths.Data("current")),
	}, nil
}

// presetsPath returns the resolved presets file location.
func (a *app) presetsPath() string {
	if a.cfg.Presets.File != "" {
		return a.cfg.Presets.File
	}
	return a.paths.Config("presets.yaml")
}

// favoritePresets resolves the favourite names to presets, keeping
// favourite order.
func (a *app) favoritePresets() []preset.Preset {
	names := a.favorites.Names()
	out := make([]preset.Preset, 0, len(names))
	for _, name := range names {
		if p, err := a.store.Get(name); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// signals gathers the environmental readings for smart selection at the
// given time. Probes run concurrently with independent timeouts and degrade
// to unavailable.
func (a *app) signals(at time.Time) preset.Signals {
	var sun probe.Sun
	if a.cfg.Location.Fixed() {
		sun = probe.SolarPosition{
			Latitude:  *a.cfg.Location.Latitude,
			Longitude: *a.cfg.Location.Longitude,
		}
	} else {
		sun = probe.NewLocatedSun(a.logger, a.cfg.Location.Command)
	}
	display := probe.NewBrightnessTool(a.logger, nil)
	return probe.Gather(sun, display, a.cfg.Smart.DisplayNumber, at, 10*time.Second)
}
