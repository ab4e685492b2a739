// Package config implements configuration management subcommands.
package config

import (
	"github.com/spf13/cobra"
)

// SkipLoadAnnotation marks commands that handle the configuration file
// themselves. The root command does not load config for them or their
// children.
const SkipLoadAnnotation = "fastfile/skip-config"

// Cmd is the config subcommand.
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `Manage fastfile configuration files.

Subcommands:
  init      Create a configuration file with defaults
  edit      Open configuration in editor
  validate  Validate configuration file
  show      Display current configuration
  schema    Generate JSON schema for IDE/validation`,
	Annotations: map[string]string{SkipLoadAnnotation: ""},
}

func init() {
	Cmd.AddCommand(initCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(validateCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(schemaCmd)
}

// configPath returns the --config flag inherited from the root command.
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
