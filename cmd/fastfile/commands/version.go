package commands

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/lukaspustina/fastfile/internal/cli/output"
	"github.com/lukaspustina/fastfile/internal/pagesize"
	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Show version information",
	Long:        `Display the fastfile version, build information, and system details.`,
	Annotations: map[string]string{skipConfig: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			_, _ = fmt.Fprintln(out, Version)
			return nil
		}

		_, _ = fmt.Fprintf(out, "fastfile %s\n", Version)
		return output.PrintKeyValues(out, [][2]string{
			{"Commit", Commit},
			{"Built", Date},
			{"Go version", runtime.Version()},
			{"OS/Arch", runtime.GOOS + "/" + runtime.GOARCH},
			{"Page size", strconv.Itoa(pagesize.Get())},
		})
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show only version number")
}
