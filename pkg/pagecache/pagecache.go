// Package pagecache reports how much of a file is resident in the
// operating system's page cache.
//
// Inspect maps the file and asks the kernel which of its pages are
// resident (mincore). Creating the probe mapping can itself perturb
// residency slightly, so results are an estimate. Only Linux is supported;
// elsewhere Inspect fails with ErrUnsupported.
package pagecache

import (
	"errors"
	"fmt"
	"os"

	"github.com/lukaspustina/fastfile/internal/pagesize"
	"github.com/lukaspustina/fastfile/pkg/fastfile"
)

// ErrUnsupported is returned on platforms without mincore support.
var ErrUnsupported = errors.New("pagecache: residency query not supported on this platform")

// Info describes the page cache residency of a file.
type Info struct {
	TotalPages  uint64 `json:"total_pages" yaml:"total_pages"`
	CachedPages uint64 `json:"cached_pages" yaml:"cached_pages"`
}

// Ratio returns CachedPages / TotalPages, or 0 for an empty file.
func (i Info) Ratio() float64 {
	if i.TotalPages == 0 {
		return 0
	}
	return float64(i.CachedPages) / float64(i.TotalPages)
}

func (i Info) String() string {
	return fmt.Sprintf("%d/%d pages cached (%.1f%%)", i.CachedPages, i.TotalPages, 100*i.Ratio())
}

// Inspect reports the residency of the first size bytes of f. An empty
// range yields the zero Info without touching the file.
func Inspect(f *os.File, size uint64) (Info, error) {
	if size == 0 {
		return Info{}, nil
	}
	return inspect(f, size)
}

// InspectPath opens the file at path, inspects its full length and
// closes it again.
func InspectPath(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fastfile.FileOpFailed("open", err)
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return Info{}, fastfile.FileOpFailed("stat", err)
	}
	return Inspect(f, uint64(fi.Size()))
}

// countResident counts vector entries whose low bit is set.
func countResident(vec []byte) uint64 {
	var n uint64
	for _, v := range vec {
		n += uint64(v & 1)
	}
	return n
}

func totalPages(size uint64) uint64 {
	return pagesize.Pages(size)
}
