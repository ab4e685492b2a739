package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lukaspustina/fastfile/internal/logger"
	"github.com/lukaspustina/fastfile/internal/telemetry"
	"github.com/lukaspustina/fastfile/pkg/config"
	"github.com/lukaspustina/fastfile/pkg/fastfile"
	"github.com/lukaspustina/fastfile/pkg/metrics"
)

// InitLogger initializes the structured logger from configuration.
func InitLogger(cfg *config.Config) error {
	loggerCfg := logger.Config{
		Level:  strings.ToUpper(cfg.Logging.Level),
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if err := logger.Init(loggerCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// tracingConfig overlays the configured telemetry settings on the tracing
// defaults. Empty values keep the default.
func tracingConfig(cfg *config.Config) telemetry.Config {
	tc := telemetry.DefaultConfig()
	tc.Enabled = cfg.Telemetry.Enabled
	tc.Insecure = cfg.Telemetry.Insecure
	tc.ServiceVersion = Version
	if cfg.Telemetry.Endpoint != "" {
		tc.Endpoint = cfg.Telemetry.Endpoint
	}
	if cfg.Telemetry.SampleRate > 0 {
		tc.SampleRate = cfg.Telemetry.SampleRate
	}
	return tc
}

// initTelemetry starts tracing and, if profile is set, profiling. The
// returned function flushes and stops both.
func initTelemetry(ctx context.Context, cfg *config.Config, profile bool, tags map[string]string) (func(), error) {
	tc := tracingConfig(cfg)
	traceShutdown, err := telemetry.Init(ctx, tc)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	profileStop := func() error { return nil }
	if profile {
		profileStop, err = telemetry.InitProfiling(telemetry.ProfilingConfig{
			Enabled:        cfg.Telemetry.Profiling.Enabled,
			ServiceName:    tc.ServiceName,
			ServiceVersion: tc.ServiceVersion,
			Endpoint:       cfg.Telemetry.Profiling.Endpoint,
			ProfileTypes:   cfg.Telemetry.Profiling.ProfileTypes,
			Tags:           tags,
		})
		if err != nil {
			_ = traceShutdown(ctx)
			return nil, fmt.Errorf("failed to initialize profiling: %w", err)
		}
	}

	if telemetry.IsEnabled() {
		logger.Debug("telemetry enabled", "endpoint", tc.Endpoint, "sample_rate", tc.SampleRate)
	}
	if telemetry.IsProfilingEnabled() {
		logger.Debug("profiling enabled", "endpoint", cfg.Telemetry.Profiling.Endpoint)
	}

	return func() {
		if err := profileStop(); err != nil {
			logger.Error("profiling shutdown error", logger.Err(err))
		}
		if err := traceShutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("telemetry shutdown error", logger.Err(err))
		}
	}, nil
}

// newReaderMetrics initializes the metrics registry when metrics are
// enabled and returns reader metrics bound to it, or nil.
func newReaderMetrics() fastfile.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	if !metrics.IsEnabled() {
		metrics.InitRegistry()
	}
	return metrics.NewReaderMetrics()
}

// serveMetrics exposes the metrics registry on port until the returned
// function is called.
func serveMetrics(port int) (func(), error) {
	ln, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("failed to listen for metrics: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", logger.Err(err))
		}
	}()
	logger.Info("metrics server listening", "address", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("metrics server shutdown error", logger.Err(err))
		}
	}, nil
}
