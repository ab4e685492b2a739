package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lukaspustina/fastfile/pkg/bench"
	"github.com/lukaspustina/fastfile/pkg/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBenchFlagsCmd returns a fresh command carrying the bench flags with
// cfg set to the defaults.
func newBenchFlagsCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	prev := cfg
	cfg = config.GetDefaultConfig()
	t.Cleanup(func() { cfg = prev })

	cmd := &cobra.Command{Use: "bench"}
	addBenchFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestResolveBenchSettings(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		s, err := resolveBenchSettings(newBenchFlagsCmd(t))
		require.NoError(t, err)

		def := config.GetDefaultConfig()
		assert.Equal(t, def.Bench.Iterations, s.iterations)
		assert.Equal(t, def.Bench.Strategies, s.strategies)
		assert.Equal(t, bench.DefaultFileSizes, s.sizes)
		assert.True(t, s.purge)
		assert.Zero(t, s.timeout)
	})

	t.Run("FlagsOverride", func(t *testing.T) {
		s, err := resolveBenchSettings(newBenchFlagsCmd(t,
			"--sizes", "4Ki,1Mi,1000",
			"--iterations", "3",
			"--strategies", "mmap,direct",
			"--purge=false",
			"--timeout", "1m",
			"--dir", "/tmp/bench"))
		require.NoError(t, err)

		assert.Equal(t, []uint64{4 << 10, 1 << 20, 1000}, s.sizes)
		assert.Equal(t, 3, s.iterations)
		assert.Equal(t, []string{"mmap", "direct"}, s.strategies)
		assert.False(t, s.purge)
		assert.Equal(t, time.Minute, s.timeout)
		assert.Equal(t, "/tmp/bench", s.dir)
	})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"BadSize", []string{"--sizes", "lots"}, "invalid size"},
		{"ZeroSize", []string{"--sizes", "0"}, "must be positive"},
		{"ZeroIterations", []string{"--iterations", "0"}, "at least 1"},
		{"UnknownStrategy", []string{"--strategies", "default,warp"}, "unknown reader strategy"},
		{"BadMode", []string{"--mode", "read"}, "invalid mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveBenchSettings(newBenchFlagsCmd(t, tt.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBenchCommand(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	dir := t.TempDir()
	csvDir := t.TempDir()

	out, err := execute(t, "bench",
		"--config", cfgPath,
		"--dir", dir,
		"--sizes", "4Ki,64Ki",
		"--iterations", "2",
		"--strategies", "default,direct,mmap",
		"--purge=false",
		"--mode", modeAll,
		"--csv", csvDir,
		"-o", "json")
	require.NoError(t, err)

	var report BenchReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Results, 8)

	methods := map[string]int{}
	for _, row := range report.Results {
		methods[row.Method]++
		assert.Equal(t, 2, row.Samples)
		assert.LessOrEqual(t, row.MinMs, row.MeanMs)
		assert.LessOrEqual(t, row.MeanMs, row.MaxMs)
	}
	assert.Equal(t, map[string]int{"default": 2, "direct": 2, "mmap": 2, bench.MethodStdlib: 2}, methods)
	assert.Equal(t, "4Ki", report.Results[0].Size)
	assert.Equal(t, uint64(64<<10), report.Results[1].Bytes)

	_, err = os.Stat(filepath.Join(csvDir, "read.csv"))
	require.NoError(t, err)

	leftovers, err := filepath.Glob(filepath.Join(dir, "fastfile-bench-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestBenchReportRows(t *testing.T) {
	res := &bench.Result{
		ID:   "run",
		Name: "read",
		Runs: []*bench.Run{{
			Method:  "mmap",
			Param:   "1048576",
			Display: "1Mi",
			Amount:  1 << 20,
			Samples: []bench.Sample{
				{Method: "mmap", Param: "1048576", Duration: time.Millisecond},
				{Method: "mmap", Param: "1048576", Duration: 3 * time.Millisecond},
			},
		}},
	}

	report := newBenchReport(res)
	require.Len(t, report.Results, 1)
	row := report.Results[0]
	assert.Equal(t, 2, row.Samples)
	assert.InDelta(t, 1.0, row.MinMs, 1e-9)
	assert.InDelta(t, 2.0, row.MeanMs, 1e-9)
	assert.InDelta(t, 3.0, row.MaxMs, 1e-9)

	rows := report.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"mmap", "1Mi", "1.000 ms", "2.000 ms", "3.000 ms"}, rows[0][:5])
	assert.Equal(t, "500.00MiB/s", rows[0][6])
}
