package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/prism/internal/preset"
	"github.com/jmylchreest/prism/internal/terminal"
)

var (
	// Set command flags
	setPreset      string
	setRandom      bool
	setSmart       bool
	setLightDark   bool
	setAnimate     bool
	setAllowRepeat bool
	setTime        timeValue
)

func newSetCmd() *cobra.Command {
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Set the colour preset",
		Long: `Set the terminal's colour preset.

With no selection flag, the current preset is re-applied, which is useful
when the terminal has drifted out of sync.

Examples:
  # Apply a preset by name
  prism set -p solarized-dark

  # Pick a random favorite (never the current preset)
  prism set -r

  # Let prism choose a favorite from sun position and display brightness
  prism set -s

  # Switch between the light and dark variant, fading between them
  prism set -l -a

  # Preview what smart selection would pick at midnight
  prism set -s -t "00:00"`,
		Args: cobra.NoArgs,
		RunE: runSet,
	}

	setCmd.Flags().StringVarP(&setPreset, "preset", "p", "", "specify a colour preset")
	setCmd.Flags().BoolVarP(&setRandom, "random", "r", false, "pick a random favorite")
	setCmd.Flags().BoolVarP(&setSmart, "smart", "s", false, "pick a smart-random favorite")
	setCmd.Flags().BoolVarP(&setLightDark, "light-dark", "l", false, "switch between light/dark")
	setCmd.Flags().BoolVarP(&setAnimate, "animate", "a", false, "animate the preset transition")
	setCmd.Flags().BoolVarP(&setAllowRepeat, "allow-repeat", "R", false, "allow repeats for --random/--smart")
	setCmd.Flags().VarP(&setTime, "time", "t", "simulate the given time for --smart")
	setCmd.MarkFlagsMutuallyExclusive("preset", "random", "smart", "light-dark")
	return setCmd
}

// runSet executes the set command.
func runSet(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	currentName, err := a.current.Get()
	if err != nil {
		return err
	}

	target, err := chooseTarget(a, currentName)
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("setting preset to %s\n", target.Name)
	}

	sink := terminal.NewStdoutSink()
	if setAnimate && currentName != "" && currentName != target.Name {
		from, err := a.store.Get(currentName)
		if err == nil {
			// Record the intended target before transmission so a dropped
			// delivery cannot desynchronise the stored state.
			if err := a.current.Set(target.Name); err != nil {
				return err
			}
			transition := terminal.NewTransition(a.logger)
			return transition.Run(context.Background(), from.Palette, target.Palette,
				a.cfg.TransitionAnimation(), sink)
		}
		a.logger.Warn("cannot animate from unknown preset", "name", currentName)
	}

	if err := a.current.Set(target.Name); err != nil {
		return err
	}
	sink.Apply(target.Palette)
	return nil
}

// chooseTarget picks the preset the set command should apply.
func chooseTarget(a *app, currentName string) (preset.Preset, error) {
	switch {
	case setPreset != "":
		p, err := a.store.Get(setPreset)
		if err != nil {
			return preset.Preset{}, fmt.Errorf("%w (try: prism list)", err)
		}
		return p, nil

	case setLightDark:
		if currentName == "" {
			return preset.Preset{}, fmt.Errorf("cannot determine current preset")
		}
		other := a.store.LightDarkAlternate(currentName)
		if other == "" {
			return preset.Preset{}, fmt.Errorf("%s does not have a light/dark version", currentName)
		}
		return a.store.Get(other)

	case setRandom:
		name, err := preset.Random(a.favorites.Names(), currentName, setAllowRepeat, nil)
		if err != nil {
			return preset.Preset{}, err
		}
		return a.store.Get(name)

	case setSmart:
		favorites := a.favoritePresets()
		selector := preset.NewSelector(a.cfg.Weights(), nil)
		history := preset.NewHistory(historyLimit(a))
		return selector.Smart(favorites, a.signals(setTime.Time()), history)

	default:
		if currentName == "" {
			return preset.Preset{}, fmt.Errorf("cannot determine current preset")
		}
		p, err := a.store.Get(currentName)
		if err != nil {
			return preset.Preset{}, fmt.Errorf("recorded current preset %w", err)
		}
		return p, nil
	}
}

// historyLimit returns the repeat-avoidance window, disabled by -R.
func historyLimit(a *app) int {
	if setAllowRepeat {
		return 0
	}
	return a.cfg.Smart.AvoidRepeat
}
