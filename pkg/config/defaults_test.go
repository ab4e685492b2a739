package config

import (
	"testing"

	"github.com/lukaspustina/fastfile/internal/bytesize"
	"github.com/lukaspustina/fastfile/pkg/bench"
	"github.com/lukaspustina/fastfile/pkg/fastfile"
)

func TestApplyDefaults_Logging(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("Expected default output 'stderr', got %q", cfg.Logging.Output)
	}
}

func TestApplyDefaults_Reader(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	def := fastfile.DefaultThresholds()
	if cfg.Reader.Strategy != fastfile.StrategyDefault {
		t.Errorf("Expected default strategy, got %q", cfg.Reader.Strategy)
	}
	if cfg.Reader.NoHintBelow.Uint64() != def.NoHintBelow {
		t.Errorf("Expected no_hint_below %d, got %d", def.NoHintBelow, cfg.Reader.NoHintBelow)
	}
	if cfg.Reader.RangeAdviseAbove.Uint64() != def.RangeAdviseAbove {
		t.Errorf("Expected range_advise_above %d, got %d", def.RangeAdviseAbove, cfg.Reader.RangeAdviseAbove)
	}
	if cfg.Reader.MinBuffer.Int() != fastfile.MinReadBufSize() {
		t.Errorf("Expected min_buffer %d, got %d", fastfile.MinReadBufSize(), cfg.Reader.MinBuffer)
	}
	if cfg.Reader.MaxBuffer.Int() != fastfile.MaxReadBufSize {
		t.Errorf("Expected max_buffer %d, got %d", fastfile.MaxReadBufSize, cfg.Reader.MaxBuffer)
	}
}

func TestApplyDefaults_Bench(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Bench.Iterations != 10 {
		t.Errorf("Expected 10 iterations, got %d", cfg.Bench.Iterations)
	}
	if len(cfg.Bench.Sizes) != len(bench.DefaultFileSizes) {
		t.Errorf("Expected %d sizes, got %d", len(bench.DefaultFileSizes), len(cfg.Bench.Sizes))
	}
	if len(cfg.Bench.Strategies) != 3 {
		t.Errorf("Expected all three strategies, got %v", cfg.Bench.Strategies)
	}
}

func TestApplyDefaults_Metrics(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Metrics.Port != 0 {
		t.Errorf("Expected no port while metrics are disabled, got %d", cfg.Metrics.Port)
	}

	cfg = &Config{Metrics: MetricsConfig{Enabled: true}}
	ApplyDefaults(cfg)
	if cfg.Metrics.Port != 9090 {
		t.Errorf("Expected default port 9090, got %d", cfg.Metrics.Port)
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  "debug",
			Format: "json",
			Output: "/var/log/fastfile.log",
		},
		Reader: ReaderConfig{
			Strategy:         fastfile.StrategyMmap,
			RangeAdviseAbove: 64 * bytesize.MiB,
		},
		Bench: BenchConfig{
			Iterations: 2,
			Sizes:      []bytesize.ByteSize{bytesize.KiB},
			Strategies: []string{fastfile.StrategyDirect},
		},
	}

	ApplyDefaults(cfg)

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected level normalized to 'DEBUG', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected format 'json', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "/var/log/fastfile.log" {
		t.Errorf("Expected explicit output preserved, got %q", cfg.Logging.Output)
	}
	if cfg.Reader.Strategy != fastfile.StrategyMmap {
		t.Errorf("Expected strategy 'mmap', got %q", cfg.Reader.Strategy)
	}
	if cfg.Reader.RangeAdviseAbove != 64*bytesize.MiB {
		t.Errorf("Expected range_advise_above 64Mi, got %v", cfg.Reader.RangeAdviseAbove)
	}
	if cfg.Bench.Iterations != 2 || len(cfg.Bench.Sizes) != 1 || len(cfg.Bench.Strategies) != 1 {
		t.Errorf("Expected explicit bench settings preserved, got %+v", cfg.Bench)
	}
}

func TestGetDefaultConfig_IsValid(t *testing.T) {
	cfg := GetDefaultConfig()

	if err := Validate(cfg); err != nil {
		t.Fatalf("Default config should be valid, got: %v", err)
	}
	if !cfg.Bench.Purge {
		t.Error("Expected bench.purge on by default")
	}
	if !cfg.Telemetry.Insecure {
		t.Error("Expected telemetry.insecure on by default")
	}
}
