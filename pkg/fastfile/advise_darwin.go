//go:build darwin

package fastfile

import (
	"math"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// radvisory mirrors struct radvisory from <sys/fcntl.h>.
type radvisory struct {
	offset int64
	count  int32
	_      int32
}

// ReadAhead turns on read-ahead for the descriptor (F_RDAHEAD).
func (SystemAdvisor) ReadAhead(f *os.File) error {
	if _, err := unix.FcntlInt(f.Fd(), unix.F_RDAHEAD, 1); err != nil {
		return FileOpFailed("readahead", LibcFailed("fcntl F_RDAHEAD", err))
	}
	return nil
}

// AdviseRange issues F_RDADVISE for the range. The kernel takes an int32
// count, so longer ranges are truncated to math.MaxInt32 bytes.
func (SystemAdvisor) AdviseRange(f *os.File, offset, length uint64) error {
	ra := radvisory{
		offset: int64(min(offset, math.MaxInt64)),
		count:  int32(min(length, math.MaxInt32)),
	}

	_, _, errno := unix.Syscall(unix.SYS_FCNTL, f.Fd(), unix.F_RDADVISE, uintptr(unsafe.Pointer(&ra)))
	if errno != 0 {
		return FileOpFailed("advise range", LibcFailed("fcntl F_RDADVISE", errno))
	}
	return nil
}
