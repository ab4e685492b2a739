package prometheus

import (
	"testing"
	"time"

	"github.com/lukaspustina/fastfile/pkg/fastfile"
	"github.com/lukaspustina/fastfile/pkg/metrics"
	"github.com/lukaspustina/fastfile/pkg/pagecache"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// value reads a counter or gauge, or the sample count of a histogram.
func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()

	var out dto.Metric
	require.NoError(t, m.Write(&out))
	switch {
	case out.Counter != nil:
		return out.GetCounter().GetValue()
	case out.Gauge != nil:
		return out.GetGauge().GetValue()
	case out.Histogram != nil:
		return float64(out.GetHistogram().GetSampleCount())
	default:
		t.Fatalf("unsupported metric type")
		return 0
	}
}

func TestReaderMetricsDisabled(t *testing.T) {
	metrics.Disable()
	assert.Nil(t, NewReaderMetrics())
	assert.Nil(t, metrics.NewReaderMetrics())

	// Methods on a nil receiver are no-ops.
	var m *readerMetrics
	m.ObserveOpen(fastfile.BackingDirect, fastfile.HintNone)
	m.ObserveHintFailure(fastfile.HintReadAhead)
	m.ObserveRead(1, time.Millisecond)
}

func TestReaderMetrics(t *testing.T) {
	metrics.InitRegistry()
	t.Cleanup(metrics.Disable)

	fm := metrics.NewReaderMetrics()
	require.NotNil(t, fm)
	m, ok := fm.(*readerMetrics)
	require.True(t, ok)

	m.ObserveOpen(fastfile.BackingDirect, fastfile.HintReadAhead)
	m.ObserveOpen(fastfile.BackingDirect, fastfile.HintReadAhead)
	m.ObserveOpen(fastfile.BackingMapped, fastfile.HintReadAhead)
	m.ObserveHintFailure(fastfile.HintRangeAdvise)
	m.ObserveRead(4096, time.Millisecond)
	m.ObserveRead(1000, 2*time.Millisecond)

	assert.Equal(t, 2.0, value(t, m.opens.WithLabelValues("direct", "readahead")))
	assert.Equal(t, 1.0, value(t, m.opens.WithLabelValues("mmap", "readahead")))
	assert.Equal(t, 1.0, value(t, m.hintFailures.WithLabelValues("range-advise")))
	assert.Equal(t, 2.0, value(t, m.reads))
	assert.Equal(t, 5096.0, value(t, m.bytesTotal))
	assert.Equal(t, 2.0, value(t, m.readBytes))
}

func TestPageCacheMetrics(t *testing.T) {
	metrics.InitRegistry()
	t.Cleanup(metrics.Disable)

	pm := metrics.NewPageCacheMetrics()
	require.NotNil(t, pm)

	metrics.RecordPageCache(pm, "/data/a", pagecache.Info{TotalPages: 4, CachedPages: 1})

	m := pm.(*pageCacheMetrics)
	assert.Equal(t, 1.0, value(t, m.cachedPages.WithLabelValues("/data/a")))
	assert.Equal(t, 4.0, value(t, m.totalPages.WithLabelValues("/data/a")))
	assert.Equal(t, 0.25, value(t, m.ratio.WithLabelValues("/data/a")))
}

func TestReaderMetricsThroughStrategy(t *testing.T) {
	metrics.InitRegistry()
	t.Cleanup(metrics.Disable)

	m := NewReaderMetrics()
	s := &fastfile.DirectStrategy{Metrics: m}

	data, err := fastfile.Read("prometheus_test.go").OpenWithStrategy(s)
	require.NoError(t, err)
	defer func() { _ = data.Close() }()

	buf, err := data.ReadToEnd()
	require.NoError(t, err)

	assert.Equal(t, 1.0, value(t, m.opens.WithLabelValues("direct", "none")))
	assert.Equal(t, float64(len(buf)), value(t, m.bytesTotal))
}
