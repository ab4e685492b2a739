package bench

import "errors"

// ErrPurgeUnsupported is returned by Purge on platforms without a way to
// evict a file from the page cache.
var ErrPurgeUnsupported = errors.New("page cache purge not supported on this platform")

// PurgeSetup returns a per-run setup that purges the file from the page
// cache, so every run reads from storage.
func PurgeSetup() func(File) error {
	return func(f File) error {
		return Purge(f.Path)
	}
}
