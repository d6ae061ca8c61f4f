package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/prism/internal/compression"
	"github.com/jmylchreest/prism/internal/config"
	"github.com/jmylchreest/prism/internal/files"
	"github.com/jmylchreest/prism/internal/preset"
)

func newPresetsCmd() *cobra.Command {
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage the preset collection",
	}
	presetsCmd.AddCommand(newPresetsImportCmd())
	return presetsCmd
}

func newPresetsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <bundle>",
		Short: "Import presets from a bundle file",
		Long: `Import presets from a YAML bundle into the preset collection.

Bundles may be plain YAML or compressed with gzip or xz; the format is
detected automatically. Imported presets replace same-named existing ones
and new presets are appended.

Examples:
  prism presets import base16.yaml
  prism presets import community-themes.yaml.xz`,
		Args: cobra.ExactArgs(1),
		RunE: runPresetsImport,
	}
}

// runPresetsImport executes the presets import command.
func runPresetsImport(cmd *cobra.Command, args []string) error {
	data, err := compression.ReadFile(args[0])
	if err != nil {
		return err
	}
	incoming, err := preset.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if len(incoming) == 0 {
		return fmt.Errorf("%s: bundle contains no presets", args[0])
	}

	// The import must work on a fresh install, so load the store directly
	// and treat a missing file as an empty collection.
	paths := files.XDG("prism")
	configPath := flagConfig
	if configPath == "" {
		configPath = paths.Config("config.yaml")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	presetsPath := cfg.Presets.File
	if presetsPath == "" {
		presetsPath = paths.Config("presets.yaml")
	}

	store, err := preset.LoadFile(presetsPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		store, _ = preset.NewStore(nil)
		if err := os.MkdirAll(filepath.Dir(presetsPath), 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	merged, err := preset.Merge(store, incoming)
	if err != nil {
		return err
	}
	if err := preset.WriteFile(presetsPath, merged); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("imported %d presets (%d total)\n", len(incoming), merged.Len())
	}
	return nil
}
