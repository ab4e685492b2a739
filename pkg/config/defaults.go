package config

import (
	"strings"

	"github.com/lukaspustina/fastfile/internal/bytesize"
	"github.com/lukaspustina/fastfile/pkg/bench"
	"github.com/lukaspustina/fastfile/pkg/fastfile"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// Zero values (0, "", nil) are replaced with defaults; explicit values are
// preserved. Boolean switches default to their zero value, except
// bench.purge which GetDefaultConfig turns on.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyMetricsDefaults(&cfg.Metrics)
	applyReaderDefaults(&cfg.Reader)
	applyBenchDefaults(&cfg.Bench)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

func applyTelemetryDefaults(cfg *TelemetryConfig) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4317"
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}

	if cfg.Profiling.Endpoint == "" {
		cfg.Profiling.Endpoint = "http://localhost:4040"
	}
	if len(cfg.Profiling.ProfileTypes) == 0 {
		cfg.Profiling.ProfileTypes = []string{
			"cpu",
			"alloc_objects",
			"alloc_space",
			"inuse_objects",
			"inuse_space",
		}
	}
}

func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.Enabled && cfg.Port == 0 {
		cfg.Port = 9090
	}
}

func applyReaderDefaults(cfg *ReaderConfig) {
	if cfg.Strategy == "" {
		cfg.Strategy = fastfile.StrategyDefault
	}

	def := fastfile.DefaultThresholds()
	if cfg.NoHintBelow == 0 {
		cfg.NoHintBelow = bytesize.ByteSize(def.NoHintBelow)
	}
	if cfg.RangeAdviseAbove == 0 {
		cfg.RangeAdviseAbove = bytesize.ByteSize(def.RangeAdviseAbove)
	}
	if cfg.MinBuffer == 0 {
		cfg.MinBuffer = bytesize.ByteSize(fastfile.MinReadBufSize())
	}
	if cfg.MaxBuffer == 0 {
		cfg.MaxBuffer = bytesize.ByteSize(fastfile.MaxReadBufSize)
	}
}

func applyBenchDefaults(cfg *BenchConfig) {
	if cfg.Iterations == 0 {
		cfg.Iterations = 10
	}
	if len(cfg.Sizes) == 0 {
		for _, s := range bench.DefaultFileSizes {
			cfg.Sizes = append(cfg.Sizes, bytesize.ByteSize(s))
		}
	}
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = []string{fastfile.StrategyDefault, fastfile.StrategyDirect, fastfile.StrategyMmap}
	}
}

// GetDefaultConfig returns a Config with all default values applied.
func GetDefaultConfig() *Config {
	cfg := &Config{
		Telemetry: TelemetryConfig{Insecure: true},
		Bench:     BenchConfig{Purge: true},
	}
	ApplyDefaults(cfg)
	return cfg
}
