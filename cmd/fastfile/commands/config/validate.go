package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/lukaspustina/fastfile/pkg/config"
	"github.com/lukaspustina/fastfile/pkg/fastfile"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the fastfile configuration file.

Checks for syntax errors, invalid byte sizes, and out-of-range values.

Examples:
  # Validate default config
  fastfile config validate

  # Validate specific config file
  fastfile config validate --config ./fastfile.yaml`,
	RunE: runConfigValidate,
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	path := configPath(cmd)

	cfg, err := config.MustLoad(path)
	if err != nil {
		return err
	}

	displayPath := path
	if displayPath == "" {
		displayPath = config.GetDefaultConfigPath()
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Configuration file: %s\n", displayPath)
	_, _ = fmt.Fprintln(out, "Validation: OK")

	if warnings := warningsFor(cfg); len(warnings) > 0 {
		_, _ = fmt.Fprintln(out, "\nWarnings:")
		for _, w := range warnings {
			_, _ = fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	_, _ = fmt.Fprintf(out, "\nConfiguration summary:\n")
	_, _ = fmt.Fprintf(out, "  Reader strategy:    %s\n", cfg.Reader.Strategy)
	_, _ = fmt.Fprintf(out, "  No hint below:      %s\n", cfg.Reader.NoHintBelow)
	_, _ = fmt.Fprintf(out, "  Range advise above: %s\n", cfg.Reader.RangeAdviseAbove)
	_, _ = fmt.Fprintf(out, "  Buffer bounds:      %s - %s\n", cfg.Reader.MinBuffer, cfg.Reader.MaxBuffer)
	_, _ = fmt.Fprintf(out, "  Log level:          %s\n", cfg.Logging.Level)

	return nil
}

// warningsFor reports settings that are valid but probably not intended.
func warningsFor(cfg *config.Config) []string {
	var warnings []string

	if cfg.Bench.Purge && runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		warnings = append(warnings, "bench.purge is enabled but page cache purging is not supported on "+runtime.GOOS)
	}
	if cfg.Bench.Dir != "" {
		if _, err := os.Stat(cfg.Bench.Dir); errors.Is(err, os.ErrNotExist) {
			warnings = append(warnings, fmt.Sprintf("bench.dir %s does not exist and will be created", cfg.Bench.Dir))
		}
	}
	if cfg.Reader.Strategy != fastfile.StrategyDefault && cfg.Reader.Thresholds() != fastfile.DefaultThresholds() {
		warnings = append(warnings, "reader thresholds are set but only the default strategy uses them")
	}
	return warnings
}
