package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/lukaspustina/fastfile/pkg/config"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in editor",
	Long: `Open the configuration file in your default editor.

Uses the EDITOR environment variable, then VISUAL, falling back to 'vi'.
Editors taking arguments work too, e.g. EDITOR="code --wait".
The file is validated after the editor exits.`,
	RunE: runConfigEdit,
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	path := configPath(cmd)
	if path == "" {
		path = config.GetDefaultConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("configuration file not found: %s\n\n"+
			"Create it first with:\n"+
			"  fastfile config init --config %s",
			path, path)
	}

	argv := editorArgs(path)
	editorCmd := exec.Command(argv[0], argv[1:]...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}

	if _, err := config.MustLoad(path); err != nil {
		return fmt.Errorf("edited configuration is invalid: %w", err)
	}
	return nil
}

// editorArgs returns the editor command line for path.
func editorArgs(path string) []string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return append(fields, path)
		}
	}
	return []string{"vi", path}
}
