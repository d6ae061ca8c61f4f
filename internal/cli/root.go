// Package cli provides the command-line interface for Prism.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/prism/internal/version"
)

var (
	// Global flags
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prism",
		Short: "A terminal colour theme manager",
		Long: `Prism manages terminal colour themes: browse and preview presets
interactively, fade between palettes with an animated transition, and let
prism pick a theme for you based on the position of the sun, your display
brightness, and a pinch of randomness.

Running prism without a command enters interactive mode.`,
		Version:      version.Short(),
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: $XDG_CONFIG_HOME/prism/config.yaml)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newPresetsCmd())
	rootCmd.AddCommand(newEditCmd())
	return rootCmd
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

// newLogger creates the process logger honouring the global flags.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if flagVerbose {
		level = hclog.Debug
	}
	if flagQuiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "prism",
		Level:  level,
		Output: os.Stderr,
	})
}
