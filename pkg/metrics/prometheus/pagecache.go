package prometheus

import (
	"github.com/lukaspustina/fastfile/pkg/metrics"
	"github.com/lukaspustina/fastfile/pkg/pagecache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// pageCacheMetrics is the Prometheus implementation of
// metrics.PageCacheMetrics.
type pageCacheMetrics struct {
	cachedPages *prometheus.GaugeVec
	totalPages  *prometheus.GaugeVec
	ratio       *prometheus.GaugeVec
}

// NewPageCacheMetrics creates the page cache gauges.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
func NewPageCacheMetrics() *pageCacheMetrics {
	if !metrics.IsEnabled() {
		return nil
	}

	reg := metrics.GetRegistry()

	return &pageCacheMetrics{
		cachedPages: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fastfile_pagecache_cached_pages",
				Help: "Resident pages of an inspected file",
			},
			[]string{"path"},
		),
		totalPages: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fastfile_pagecache_total_pages",
				Help: "Total pages of an inspected file",
			},
			[]string{"path"},
		),
		ratio: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fastfile_pagecache_ratio",
				Help: "Fraction of an inspected file resident in the page cache (0.0 to 1.0)",
			},
			[]string{"path"},
		),
	}
}

func (m *pageCacheMetrics) RecordPageCache(path string, info pagecache.Info) {
	if m == nil {
		return
	}
	m.cachedPages.WithLabelValues(path).Set(float64(info.CachedPages))
	m.totalPages.WithLabelValues(path).Set(float64(info.TotalPages))
	m.ratio.WithLabelValues(path).Set(info.Ratio())
}
