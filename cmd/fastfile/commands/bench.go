package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/lukaspustina/fastfile/internal/bytesize"
	"github.com/lukaspustina/fastfile/internal/logger"
	"github.com/lukaspustina/fastfile/internal/telemetry"
	"github.com/lukaspustina/fastfile/pkg/bench"
	"github.com/lukaspustina/fastfile/pkg/fastfile"
	"github.com/lukaspustina/fastfile/pkg/metrics"
	"github.com/lukaspustina/fastfile/pkg/pagecache"
	"github.com/spf13/cobra"
)

var (
	benchDir        string
	benchSizes      []string
	benchIterations int
	benchStrategies []string
	benchPurge      bool
	benchCSV        string
	benchTimeout    time.Duration
	benchMode       string
	benchBaseline   bool
	benchKeep       bool
	benchSeed       uint64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark reader strategies across file sizes",
	Long: `Generate pseudo-random files of several sizes and time reading them with
each reader strategy, plus a bufio baseline. Files are purged from the page
cache before every run unless --purge=false is given.

Defaults come from the bench section of the configuration file.

Examples:
  # Full run with configured sizes and strategies
  fastfile bench

  # Quick comparison of two strategies on small files
  fastfile bench --sizes 4Ki,1Mi --strategies default,mmap --iterations 3

  # Keep raw samples as CSV
  fastfile bench --csv ./results`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	addBenchFlags(benchCmd)
}

func addBenchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&benchDir, "dir", "", "Directory for benchmark files (default: bench.dir or the temp dir)")
	cmd.Flags().StringSliceVar(&benchSizes, "sizes", nil, "File sizes, comma-separated (e.g. 4Ki,1Mi,100Mi)")
	cmd.Flags().IntVar(&benchIterations, "iterations", 0, "Runs per strategy and size")
	cmd.Flags().StringSliceVar(&benchStrategies, "strategies", nil, "Strategies to compare (default,direct,mmap)")
	cmd.Flags().BoolVar(&benchPurge, "purge", true, "Purge files from the page cache before every run")
	cmd.Flags().StringVar(&benchCSV, "csv", "", "Write raw samples as CSV into this directory")
	cmd.Flags().DurationVar(&benchTimeout, "timeout", 0, "Abort the benchmark after this duration")
	cmd.Flags().StringVar(&benchMode, "mode", modeNext, "Drain mode for strategies (next|all)")
	cmd.Flags().BoolVar(&benchBaseline, "baseline", true, "Include the bufio baseline")
	cmd.Flags().BoolVar(&benchKeep, "keep", false, "Keep benchmark files after the run")
	cmd.Flags().Uint64Var(&benchSeed, "seed", 1, "Seed for file contents")
}

// benchSettings is the bench configuration after applying flags.
type benchSettings struct {
	dir        string
	sizes      []uint64
	iterations int
	strategies []string
	purge      bool
	timeout    time.Duration
}

func resolveBenchSettings(cmd *cobra.Command) (benchSettings, error) {
	s := benchSettings{
		dir:        cfg.Bench.Dir,
		iterations: cfg.Bench.Iterations,
		strategies: cfg.Bench.Strategies,
		purge:      cfg.Bench.Purge,
		timeout:    cfg.Bench.Timeout,
	}
	for _, size := range cfg.Bench.Sizes {
		s.sizes = append(s.sizes, size.Uint64())
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		s.dir = benchDir
	}
	if flags.Changed("iterations") {
		if benchIterations < 1 {
			return s, fmt.Errorf("--iterations must be at least 1, got %d", benchIterations)
		}
		s.iterations = benchIterations
	}
	if flags.Changed("strategies") {
		for _, name := range benchStrategies {
			if _, err := fastfile.StrategyByName(name); err != nil {
				return s, err
			}
		}
		s.strategies = benchStrategies
	}
	if flags.Changed("purge") {
		s.purge = benchPurge
	}
	if flags.Changed("timeout") {
		s.timeout = benchTimeout
	}
	if flags.Changed("sizes") {
		s.sizes = s.sizes[:0]
		for _, raw := range benchSizes {
			size, err := bytesize.ParseByteSize(raw)
			if err != nil {
				return s, fmt.Errorf("invalid size %q: %w", raw, err)
			}
			if size == 0 {
				return s, fmt.Errorf("invalid size %q: must be positive", raw)
			}
			s.sizes = append(s.sizes, size.Uint64())
		}
	}

	switch benchMode {
	case modeNext, modeAll:
	default:
		return s, fmt.Errorf("invalid mode %q: must be next or all", benchMode)
	}
	return s, nil
}

// BenchRow summarizes one (method, size) pair.
type BenchRow struct {
	Method     string  `json:"method" yaml:"method"`
	Size       string  `json:"size" yaml:"size"`
	Bytes      uint64  `json:"bytes" yaml:"bytes"`
	Samples    int     `json:"samples" yaml:"samples"`
	MinMs      float64 `json:"min_ms" yaml:"min_ms"`
	MeanMs     float64 `json:"mean_ms" yaml:"mean_ms"`
	MaxMs      float64 `json:"max_ms" yaml:"max_ms"`
	StdDevMs   float64 `json:"stddev_ms" yaml:"stddev_ms"`
	Throughput string  `json:"throughput" yaml:"throughput"`
}

// BenchReport is the printed result of a benchmark.
type BenchReport struct {
	RunID   string     `json:"run_id" yaml:"run_id"`
	Results []BenchRow `json:"results" yaml:"results"`
}

func newBenchReport(res *bench.Result) BenchReport {
	report := BenchReport{RunID: res.ID, Results: make([]BenchRow, 0, len(res.Runs))}
	for _, run := range res.Runs {
		sum := run.Summary()
		report.Results = append(report.Results, BenchRow{
			Method:     run.Method,
			Size:       run.Display,
			Bytes:      run.Amount,
			Samples:    sum.Count,
			MinMs:      msFloat(sum.Min),
			MeanMs:     msFloat(sum.Mean),
			MaxMs:      msFloat(sum.Max),
			StdDevMs:   msFloat(sum.StdDev),
			Throughput: run.Throughput().String(),
		})
	}
	return report
}

func msFloat(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

func (r BenchReport) Headers() []string {
	return []string{"Method", "Size", "Min", "Mean", "Max", "SD", "Mean Throughput"}
}

func (r BenchReport) Rows() [][]string {
	rows := make([][]string, 0, len(r.Results))
	for _, row := range r.Results {
		mean := "-"
		if row.MeanMs > 0 {
			mean = bytesize.ByteSize(float64(row.Bytes)/(row.MeanMs/1000)).HumanString() + "/s"
		}
		rows = append(rows, []string{
			row.Method,
			row.Size,
			fmt.Sprintf("%.3f ms", row.MinMs),
			fmt.Sprintf("%.3f ms", row.MeanMs),
			fmt.Sprintf("%.3f ms", row.MaxMs),
			fmt.Sprintf("%.3f ms", row.StdDevMs),
			mean,
		})
	}
	return rows
}

func runBench(cmd *cobra.Command, _ []string) error {
	settings, err := resolveBenchSettings(cmd)
	if err != nil {
		return err
	}

	p, err := printer(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if settings.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.timeout)
		defer cancel()
	}

	runID := uuid.NewString()
	ctx = telemetry.WithLogContext(ctx, "bench")

	shutdown, err := initTelemetry(ctx, cfg, true, map[string]string{"run_id": runID})
	if err != nil {
		return err
	}
	defer shutdown()

	readerMetrics := newReaderMetrics()
	var pcMetrics metrics.PageCacheMetrics
	if cfg.Metrics.Enabled {
		pcMetrics = metrics.NewPageCacheMetrics()
		stopMetrics, err := serveMetrics(cfg.Metrics.Port)
		if err != nil {
			return err
		}
		defer stopMetrics()
	}

	logger.InfoCtx(ctx, "preparing benchmark files", "files", len(settings.sizes), "dir", settings.dir)
	params, err := bench.PrepareFiles(settings.dir, settings.sizes, benchSeed)
	if err != nil {
		return err
	}
	if !benchKeep {
		defer func() {
			if err := bench.Cleanup(params); err != nil {
				logger.Warn("failed to remove benchmark files", logger.Err(err))
			}
		}()
	}

	b := bench.New("read", params, settings.iterations)
	b.ID = runID
	for _, name := range settings.strategies {
		s, err := cfg.Reader.NewStrategyNamed(name, readerMetrics)
		if err != nil {
			return err
		}
		if benchMode == modeAll {
			b.AddFunc(name, bench.ReadToEndMethod(s))
		} else {
			b.AddFunc(name, bench.NextMethod(s))
		}
	}
	if benchBaseline {
		b.AddFunc(bench.MethodStdlib, bench.StdlibMethod)
	}

	if settings.purge && len(params) > 0 {
		if err := bench.Purge(params[0].Value.Path); errors.Is(err, bench.ErrPurgeUnsupported) {
			logger.WarnCtx(ctx, "page cache purge unsupported, runs may hit the cache")
		} else if err != nil {
			return fmt.Errorf("failed to purge page cache: %w", err)
		} else {
			b.WithSetup(bench.PurgeSetup())
		}
	}
	if pcMetrics != nil {
		b.WithTeardown(func(f bench.File) error {
			info, err := pagecache.InspectPath(f.Path)
			if errors.Is(err, pagecache.ErrUnsupported) {
				return nil
			}
			if err != nil {
				return err
			}
			metrics.RecordPageCache(pcMetrics, f.Path, info)
			return nil
		})
	}

	ctx, span := telemetry.StartBenchSpan(ctx, b.Name,
		telemetry.RunID(runID),
		telemetry.Iterations(settings.iterations))
	res, runErr := b.Run(ctx)
	if runErr != nil {
		telemetry.RecordError(ctx, runErr)
	}
	span.End()

	if res == nil {
		return runErr
	}

	if benchCSV != "" {
		path, err := res.WriteResults(benchCSV)
		if err != nil {
			return err
		}
		logger.InfoCtx(ctx, "wrote benchmark samples", logger.Path(path))
	}

	if err := p.Print(newBenchReport(res)); err != nil {
		return err
	}
	return runErr
}
