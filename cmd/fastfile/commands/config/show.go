package config

import (
	"github.com/lukaspustina/fastfile/internal/cli/output"
	"github.com/lukaspustina/fastfile/pkg/config"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Display the effective fastfile configuration: file values merged with
FASTFILE_* environment variables and defaults.

Outputs YAML unless --output json is given.

Examples:
  # Show effective config as YAML
  fastfile config show

  # Show as JSON
  fastfile config show --output json`,
	RunE: runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return err
	}

	formatName, _ := cmd.Flags().GetString("output")
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(cmd.OutOrStdout(), cfg)
	default:
		return output.PrintYAML(cmd.OutOrStdout(), cfg)
	}
}
