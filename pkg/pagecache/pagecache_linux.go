//go:build linux

package pagecache

import (
	"errors"
	"math"
	"os"
	"unsafe"

	"github.com/lukaspustina/fastfile/internal/mmap"
	"github.com/lukaspustina/fastfile/pkg/fastfile"
	"golang.org/x/sys/unix"
)

func inspect(f *os.File, size uint64) (Info, error) {
	if size > math.MaxInt {
		return Info{}, fastfile.MemOpFailed("file too large to map")
	}

	region, err := mmap.Map(int(f.Fd()), int(size), true)
	if err != nil {
		return Info{}, fastfile.FileOpFailed("mmap", libcCause("mmap", err))
	}

	total := totalPages(size)
	vec := make([]byte, total)
	mincoreErr := mincore(region.Bytes(), vec)

	if err := region.Close(); err != nil {
		return Info{}, fastfile.FileOpFailed("munmap", libcCause("munmap", err))
	}
	if mincoreErr != nil {
		return Info{}, fastfile.FileOpFailed("mincore", fastfile.LibcFailed("mincore", mincoreErr))
	}

	return Info{TotalPages: total, CachedPages: countResident(vec)}, nil
}

// mincore fills vec with one residency byte per page of b. x/sys/unix has
// no wrapper for it.
func mincore(b, vec []byte) error {
	if len(b) == 0 {
		return nil
	}
	_, _, errno := unix.Syscall(unix.SYS_MINCORE,
		uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)), uintptr(unsafe.Pointer(&vec[0])))
	if errno != 0 {
		return errno
	}
	return nil
}

func libcCause(name string, err error) error {
	var me *mmap.Error
	if errors.As(err, &me) && me.Err != nil {
		return fastfile.LibcFailed(name, me.Err)
	}
	return err
}
