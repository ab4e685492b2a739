//go:build darwin

package bench

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Purge invalidates the cached pages of path by mapping the file and
// calling msync with MS_INVALIDATE.
func Purge(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	if fi.Size() == 0 {
		return nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("mmap %s: %w", path, err)
	}
	defer func() { _ = unix.Munmap(data) }()

	if err := unix.Msync(data, unix.MS_INVALIDATE); err != nil {
		return fmt.Errorf("msync %s: %w", path, err)
	}
	return nil
}
