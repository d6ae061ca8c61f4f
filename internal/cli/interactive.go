package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/prism/internal/interactive"
	"github.com/jmylchreest/prism/internal/terminal"
)

// runInteractive enters interactive mode; it is the root command's default
// action.
func runInteractive(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	currentName, err := a.current.Get()
	if err != nil {
		return err
	}
	if !a.store.Has(currentName) {
		// No (or stale) record of the live preset: start browsing from the
		// top rather than refusing to run.
		currentName = ""
	}

	ctrl, err := interactive.NewController(a.store, a.favorites, interactive.FzfPicker{}, currentName, nil)
	if err != nil {
		return err
	}
	loop := interactive.NewLoop(ctrl, terminal.NewStdoutSink(), a.current, os.Stdout)
	return loop.Run()
}
