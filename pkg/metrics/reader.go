package metrics

import (
	"github.com/lukaspustina/fastfile/pkg/fastfile"
	"github.com/lukaspustina/fastfile/pkg/pagecache"
)

// NewReaderMetrics creates a Prometheus-backed fastfile.Metrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called) or no
// implementation has been registered. Strategies handed nil record nothing.
//
// Example usage:
//
//	metrics.InitRegistry()
//	s := &fastfile.DefaultStrategy{Metrics: metrics.NewReaderMetrics()}
//	r, err := fastfile.Read(path).OpenWithStrategy(s)
func NewReaderMetrics() fastfile.Metrics {
	if !IsEnabled() || newPrometheusReaderMetrics == nil {
		return nil
	}
	return newPrometheusReaderMetrics()
}

// newPrometheusReaderMetrics is set by pkg/metrics/prometheus. The
// indirection keeps this package free of an import cycle.
var newPrometheusReaderMetrics func() fastfile.Metrics

// RegisterReaderMetricsConstructor registers the Prometheus reader metrics
// constructor. Called by pkg/metrics/prometheus during initialization.
func RegisterReaderMetricsConstructor(constructor func() fastfile.Metrics) {
	newPrometheusReaderMetrics = constructor
}

// PageCacheMetrics records page cache residency of inspected files.
type PageCacheMetrics interface {
	RecordPageCache(path string, info pagecache.Info)
}

// NewPageCacheMetrics creates a Prometheus-backed PageCacheMetrics
// instance, or nil if metrics are disabled.
func NewPageCacheMetrics() PageCacheMetrics {
	if !IsEnabled() || newPrometheusPageCacheMetrics == nil {
		return nil
	}
	return newPrometheusPageCacheMetrics()
}

var newPrometheusPageCacheMetrics func() PageCacheMetrics

// RegisterPageCacheMetricsConstructor registers the Prometheus page cache
// metrics constructor.
func RegisterPageCacheMetricsConstructor(constructor func() PageCacheMetrics) {
	newPrometheusPageCacheMetrics = constructor
}

// RecordPageCache records info for path on m. A nil m is a no-op.
func RecordPageCache(m PageCacheMetrics, path string, info pagecache.Info) {
	if m != nil {
		m.RecordPageCache(path, info)
	}
}
