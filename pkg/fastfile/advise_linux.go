//go:build linux

package fastfile

import (
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// ReadAhead sets POSIX_FADV_SEQUENTIAL for the whole file, which doubles the
// kernel's readahead window.
func (SystemAdvisor) ReadAhead(f *os.File) error {
	if err := unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL); err != nil {
		return FileOpFailed("readahead", LibcFailed("posix_fadvise", err))
	}
	return nil
}

// AdviseRange issues POSIX_FADV_WILLNEED for the range, starting
// asynchronous reads of its pages.
func (SystemAdvisor) AdviseRange(f *os.File, offset, length uint64) error {
	off := int64(min(offset, math.MaxInt64))
	n := int64(min(length, math.MaxInt64))

	if err := unix.Fadvise(int(f.Fd()), off, n, unix.FADV_WILLNEED); err != nil {
		return FileOpFailed("advise range", LibcFailed("posix_fadvise", err))
	}
	return nil
}
