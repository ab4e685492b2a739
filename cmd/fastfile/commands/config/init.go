package config

import (
	"fmt"

	"github.com/lukaspustina/fastfile/pkg/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a configuration file",
	Long: `Write a configuration file populated with the default values.

By default, the configuration file is created at $XDG_CONFIG_HOME/fastfile/config.yaml.
Use --config to specify a custom path.

Examples:
  # Initialize with default location
  fastfile config init

  # Initialize with custom path
  fastfile config init --config ./fastfile.yaml

  # Force overwrite existing config
  fastfile config init --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath(cmd)

	var err error
	if path != "" {
		err = config.InitConfigToPath(path, initForce)
	} else {
		path, err = config.InitConfig(initForce)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Configuration file created at: %s\n", path)
	_, _ = fmt.Fprintln(out, "\nNext steps:")
	_, _ = fmt.Fprintln(out, "  1. Tune the reader thresholds and buffer bounds for your storage")
	_, _ = fmt.Fprintf(out, "  2. Compare strategies with: fastfile bench --config %s\n", path)
	return nil
}
