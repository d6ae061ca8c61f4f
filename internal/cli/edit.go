package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/prism/internal/files"
)

var editFavorites bool

func newEditCmd() *cobra.Command {
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the config file",
		Long:  `Open the config file (or the favorites file with -f) in $VISUAL or $EDITOR.`,
		Args:  cobra.NoArgs,
		RunE:  runEdit,
	}
	editCmd.Flags().BoolVarP(&editFavorites, "favorites", "f", false, "edit the favorites file")
	return editCmd
}

// runEdit executes the edit command.
func runEdit(cmd *cobra.Command, args []string) error {
	editor, err := lookupEditor()
	if err != nil {
		return err
	}

	// No app load here: editing must work before any presets exist.
	paths := files.XDG("prism")
	path := paths.Config("config.yaml")
	if flagConfig != "" {
		path = flagConfig
	}
	if editFavorites {
		path = paths.Config("favorites")
	}

	edit := exec.Command(editor, path) // #nosec G204 - Editor comes from the user's own environment
	edit.Stdin = os.Stdin
	edit.Stdout = os.Stdout
	edit.Stderr = os.Stderr
	return edit.Run()
}

func lookupEditor() (string, error) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if value := os.Getenv(env); value != "" {
			return value, nil
		}
	}
	return "", fmt.Errorf("must set the VISUAL or EDITOR environment variable")
}
