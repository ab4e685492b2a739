package commands

import (
	"fmt"
	"strconv"

	"github.com/lukaspustina/fastfile/internal/logger"
	"github.com/lukaspustina/fastfile/pkg/metrics"
	"github.com/lukaspustina/fastfile/pkg/pagecache"
	"github.com/spf13/cobra"
)

var pagecacheCmd = &cobra.Command{
	Use:   "pagecache <path>...",
	Short: "Show how much of a file is in the page cache",
	Long: `Report the page cache residency of one or more files: the number of
pages the file spans, how many of them are resident, and the ratio.

Examples:
  fastfile pagecache data.bin
  fastfile pagecache *.bin -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPagecache,
}

// PageCacheEntry is the residency of one file.
type PageCacheEntry struct {
	Path        string  `json:"path" yaml:"path"`
	CachedPages uint64  `json:"cached_pages" yaml:"cached_pages"`
	TotalPages  uint64  `json:"total_pages" yaml:"total_pages"`
	Ratio       float64 `json:"ratio" yaml:"ratio"`
}

// PageCacheReport is the result of the pagecache command.
type PageCacheReport []PageCacheEntry

func (r PageCacheReport) Headers() []string {
	return []string{"Path", "Cached", "Total", "Ratio"}
}

func (r PageCacheReport) Rows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, e := range r {
		rows = append(rows, []string{
			e.Path,
			strconv.FormatUint(e.CachedPages, 10),
			strconv.FormatUint(e.TotalPages, 10),
			fmt.Sprintf("%.1f%%", 100*e.Ratio),
		})
	}
	return rows
}

func runPagecache(cmd *cobra.Command, args []string) error {
	p, err := printer(cmd)
	if err != nil {
		return err
	}

	var m metrics.PageCacheMetrics
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		m = metrics.NewPageCacheMetrics()
	}

	report := make(PageCacheReport, 0, len(args))
	for _, path := range args {
		info, err := pagecache.InspectPath(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("page cache residency",
			logger.Path(path),
			logger.CachedPages(info.CachedPages),
			logger.TotalPages(info.TotalPages))

		metrics.RecordPageCache(m, path, info)
		report = append(report, PageCacheEntry{
			Path:        path,
			CachedPages: info.CachedPages,
			TotalPages:  info.TotalPages,
			Ratio:       info.Ratio(),
		})
	}

	return p.Print(report)
}
