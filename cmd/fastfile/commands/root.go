// Package commands implements the fastfile CLI.
package commands

import (
	"os"

	"github.com/lukaspustina/fastfile/cmd/fastfile/commands/config"
	"github.com/lukaspustina/fastfile/internal/cli/output"
	pkgconfig "github.com/lukaspustina/fastfile/pkg/config"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Global flags.
	cfgFile   string
	outputFmt string
	logLevel  string

	// cfg is loaded by the root PersistentPreRunE.
	cfg *pkgconfig.Config
)

// skipConfig marks commands that must run without a loadable config.
const skipConfig = config.SkipLoadAnnotation

var rootCmd = &cobra.Command{
	Use:   "fastfile",
	Short: "fastfile - adaptive fast file reading",
	Long: `fastfile reads files as fast as the operating system allows. It picks a
reader strategy by file size, gives the kernel read-ahead or prefetch hints,
and reads through a buffer sized to the file.

Use "fastfile [command] --help" for more information about a command.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/fastfile/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table", "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level (DEBUG|INFO|WARN|ERROR)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(pagecacheCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(config.Cmd)
	rootCmd.AddCommand(completionCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	if _, ok := cmd.Annotations[skipConfig]; ok {
		return nil
	}
	for p := cmd.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.Annotations[skipConfig]; ok {
			return nil
		}
	}

	loaded, err := pkgconfig.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Logging.Level = logLevel
	}

	cfg = loaded
	return InitLogger(cfg)
}

// printer returns a Printer for the global --output flag writing to the
// command's output.
func printer(cmd *cobra.Command) (*output.Printer, error) {
	format, err := output.ParseFormat(outputFmt)
	if err != nil {
		return nil, err
	}
	if out := cmd.OutOrStdout(); out != os.Stdout {
		return output.NewPrinter(out, format, false), nil
	}
	return output.Stdout(format), nil
}
