package commands

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strconv"
	"time"

	"github.com/lukaspustina/fastfile/internal/bytesize"
	"github.com/lukaspustina/fastfile/internal/logger"
	"github.com/lukaspustina/fastfile/internal/telemetry"
	"github.com/lukaspustina/fastfile/pkg/fastfile"
	"github.com/spf13/cobra"
)

// Drain modes of the read command.
const (
	modeNext = "next"
	modeAll  = "all"
	modeRead = "read"
)

var (
	readStrategy string
	readSize     bytesize.ByteSize
	readSizeHint bytesize.ByteSize
	readMode     string
)

var readCmd = &cobra.Command{
	Use:   "read <path>",
	Short: "Read a file and print its digest",
	Long: `Read a file through the configured reader strategy and print the bytes
read, the SHA-256 digest, and the throughput.

Drain modes:
  next  read chunk by chunk with the reader's own buffer (default)
  all   read the whole file into memory at once
  read  copy through the io.Reader interface

Examples:
  # Read with the configured strategy
  fastfile read /var/log/syslog

  # Force memory mapping and skip the stat call
  fastfile read --strategy mmap --size 64Mi data.bin

  # Machine-readable output
  fastfile read data.bin -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().StringVar(&readStrategy, "strategy", "", "Reader strategy (default|direct|mmap); defaults to reader.strategy")
	readCmd.Flags().Var(&readSize, "size", "Exact file size, skips the stat call (e.g. 64Mi)")
	readCmd.Flags().Var(&readSizeHint, "size-hint", "Approximate file size (e.g. 1Gi)")
	readCmd.Flags().StringVar(&readMode, "mode", modeNext, "Drain mode (next|all|read)")
}

// ReadResult is the outcome of a read command.
type ReadResult struct {
	Path       string  `json:"path" yaml:"path"`
	Strategy   string  `json:"strategy" yaml:"strategy"`
	Backend    string  `json:"backend" yaml:"backend"`
	Mode       string  `json:"mode" yaml:"mode"`
	BufferSize int     `json:"buffer_size" yaml:"buffer_size"`
	BytesRead  uint64  `json:"bytes_read" yaml:"bytes_read"`
	SHA256     string  `json:"sha256" yaml:"sha256"`
	DurationMs float64 `json:"duration_ms" yaml:"duration_ms"`
}

// Throughput returns bytes per second, or 0 for an instant read.
func (r ReadResult) Throughput() float64 {
	if r.DurationMs <= 0 {
		return 0
	}
	return float64(r.BytesRead) / (r.DurationMs / 1000)
}

func (r ReadResult) Headers() []string {
	return []string{"Field", "Value"}
}

func (r ReadResult) Rows() [][]string {
	return [][]string{
		{"Path", r.Path},
		{"Strategy", r.Strategy},
		{"Backend", r.Backend},
		{"Mode", r.Mode},
		{"Buffer", bytesize.ByteSize(r.BufferSize).HumanString()},
		{"Bytes", strconv.FormatUint(r.BytesRead, 10)},
		{"SHA256", r.SHA256},
		{"Duration", fmt.Sprintf("%.3f ms", r.DurationMs)},
		{"Throughput", bytesize.ByteSize(r.Throughput()).HumanString() + "/s"},
	}
}

func runRead(cmd *cobra.Command, args []string) error {
	path := args[0]

	switch readMode {
	case modeNext, modeAll, modeRead:
	default:
		return fmt.Errorf("invalid mode %q: must be next, all or read", readMode)
	}

	strategyName := cfg.Reader.Strategy
	if cmd.Flags().Changed("strategy") {
		strategyName = readStrategy
	}

	p, err := printer(cmd)
	if err != nil {
		return err
	}

	ctx := telemetry.WithLogContext(cmd.Context(), "read")
	shutdown, err := initTelemetry(ctx, cfg, false, nil)
	if err != nil {
		return err
	}
	defer shutdown()

	strategy, err := cfg.Reader.NewStrategyNamed(strategyName, newReaderMetrics())
	if err != nil {
		return err
	}

	req := fastfile.Read(path)
	if cmd.Flags().Changed("size") {
		req = req.WithSize(readSize.Uint64())
	}
	if cmd.Flags().Changed("size-hint") {
		req = req.WithSizeHint(readSizeHint.Uint64())
	}

	ctx, span := telemetry.StartReadSpan(ctx, path, strategyName)
	defer span.End()

	start := time.Now()
	r, err := req.OpenWithStrategy(strategy)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return err
	}
	defer func() { _ = r.Close() }()

	span.SetAttributes(
		telemetry.Size(r.Size()),
		telemetry.Backend(r.Backend().String()),
		telemetry.BufferSize(r.BufferSize()),
	)
	if strategyName == "" || strategyName == fastfile.StrategyDefault {
		span.SetAttributes(telemetry.Hint(cfg.Reader.Thresholds().Classify(r.Size()).String()))
	}

	h := sha256.New()
	n, err := drain(r, h, readMode)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return err
	}
	elapsed := time.Since(start)
	span.SetAttributes(telemetry.BytesRead(n))

	logger.DebugCtx(ctx, "read finished",
		logger.Path(path),
		logger.Strategy(strategyName),
		logger.Backend(r.Backend().String()),
		logger.BufferSize(r.BufferSize()),
		logger.DurationMs(float64(elapsed.Microseconds())/1000))

	return p.Print(ReadResult{
		Path:       path,
		Strategy:   strategyName,
		Backend:    r.Backend().String(),
		Mode:       readMode,
		BufferSize: r.BufferSize(),
		BytesRead:  n,
		SHA256:     hex.EncodeToString(h.Sum(nil)),
		DurationMs: float64(elapsed.Microseconds()) / 1000,
	})
}

// drain reads r to the end in the given mode, feeding every byte to h.
func drain(r *fastfile.Reader, h hash.Hash, mode string) (uint64, error) {
	switch mode {
	case modeAll:
		data, err := r.ReadToEnd()
		if err != nil {
			return 0, err
		}
		_, _ = h.Write(data)
		return uint64(len(data)), nil

	case modeRead:
		n, err := io.CopyBuffer(h, r, make([]byte, r.BufferSize()))
		return uint64(n), err

	default:
		var total uint64
		for {
			chunk, err := r.Next()
			_, _ = h.Write(chunk)
			total += uint64(len(chunk))
			if err != nil {
				if fastfile.IsInterrupted(err) {
					continue
				}
				return total, err
			}
			if len(chunk) == 0 {
				return total, nil
			}
		}
	}
}
