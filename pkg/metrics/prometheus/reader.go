// Package prometheus implements the metrics interfaces of pkg/metrics on
// the Prometheus client. Importing it registers the constructors.
package prometheus

import (
	"time"

	"github.com/lukaspustina/fastfile/pkg/fastfile"
	"github.com/lukaspustina/fastfile/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func init() {
	metrics.RegisterReaderMetricsConstructor(func() fastfile.Metrics {
		if m := NewReaderMetrics(); m != nil {
			return m
		}
		return nil
	})
	metrics.RegisterPageCacheMetricsConstructor(func() metrics.PageCacheMetrics {
		if m := NewPageCacheMetrics(); m != nil {
			return m
		}
		return nil
	})
}

// readerMetrics is the Prometheus implementation of fastfile.Metrics.
type readerMetrics struct {
	opens        *prometheus.CounterVec
	hintFailures *prometheus.CounterVec
	reads        prometheus.Counter
	readBytes    prometheus.Histogram
	readDuration prometheus.Histogram
	bytesTotal   prometheus.Counter
}

// NewReaderMetrics creates the reader metrics on the registry of
// pkg/metrics.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
func NewReaderMetrics() *readerMetrics {
	if !metrics.IsEnabled() {
		return nil
	}

	reg := metrics.GetRegistry()

	return &readerMetrics{
		opens: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastfile_reader_opens_total",
				Help: "Total number of readers opened by backing and hint class",
			},
			[]string{"backend", "hint"}, // backend: "direct", "mmap"
		),
		hintFailures: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastfile_hint_failures_total",
				Help: "Total number of failed kernel hints by hint class",
			},
			[]string{"hint"},
		),
		reads: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "fastfile_reads_total",
				Help: "Total number of non-empty reads",
			},
		),
		readBytes: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name: "fastfile_read_bytes",
				Help: "Distribution of bytes returned per read",
				Buckets: []float64{
					4096,      // 4KB - one page
					16384,     // 16KB
					65536,     // 64KB
					262144,    // 256KB
					1048576,   // 1MB
					4194304,   // 4MB - largest scratch buffer
					16777216,  // 16MB - ReadToEnd
					104857600, // 100MB
				},
			},
		),
		readDuration: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name: "fastfile_read_duration_milliseconds",
				Help: "Duration of reads in milliseconds",
				Buckets: []float64{
					0.01, // 10us - page cache hit
					0.1,  // 100us
					0.5,  // 500us
					1,    // 1ms
					5,    // 5ms
					10,   // 10ms
					50,   // 50ms
					100,  // 100ms
					1000, // 1s - large cold reads
				},
			},
		),
		bytesTotal: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "fastfile_read_bytes_total",
				Help: "Total number of bytes read",
			},
		),
	}
}

func (m *readerMetrics) ObserveOpen(backend fastfile.BackingKind, hint fastfile.HintClass) {
	if m == nil {
		return
	}
	m.opens.WithLabelValues(backend.String(), hint.String()).Inc()
}

func (m *readerMetrics) ObserveHintFailure(hint fastfile.HintClass) {
	if m == nil {
		return
	}
	m.hintFailures.WithLabelValues(hint.String()).Inc()
}

func (m *readerMetrics) ObserveRead(bytes int, d time.Duration) {
	if m == nil {
		return
	}
	m.reads.Inc()
	m.readBytes.Observe(float64(bytes))
	m.readDuration.Observe(d.Seconds() * 1000)
	m.bytesTotal.Add(float64(bytes))
}
