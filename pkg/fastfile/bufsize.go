package fastfile

import (
	"math"

	"github.com/lukaspustina/fastfile/internal/pagesize"
)

// MaxReadBufSize is the upper bound for the scratch buffer Reader.Next reads
// into (4 MiB). ReadToEnd grows its buffer past it to hold the whole file.
const MaxReadBufSize = 4 << 20

// MinReadBufSize returns the lower bound for Reader scratch buffers,
// which is one memory page.
func MinReadBufSize() int {
	return pagesize.Get()
}

// OptimalBufferSize returns the scratch buffer size for a file of fileSize
// bytes: the size rounded up to whole pages, clamped to
// [MinReadBufSize, MaxReadBufSize].
func OptimalBufferSize(fileSize uint64) int {
	return BufferSize(fileSize, pagesize.Get(), MinReadBufSize(), MaxReadBufSize)
}

// BufferSize rounds fileSize up to the next multiple of pageSize and clamps
// the result into [minBuf, maxBuf].
//
// The result is non-decreasing in fileSize, equals minBuf for any
// fileSize <= minBuf and equals maxBuf for any fileSize >= maxBuf. Bounds
// must satisfy CheckBufferBounds; BufferSize does not re-validate them.
func BufferSize(fileSize uint64, pageSize, minBuf, maxBuf int) int {
	// Anything at or above maxBuf saturates, which also keeps the
	// round-up below from overflowing.
	if fileSize >= uint64(maxBuf) {
		return maxBuf
	}

	ps := uint64(pageSize)
	rounded := (fileSize + ps - 1) / ps * ps

	size := int(min(rounded, uint64(maxBuf)))
	return max(size, minBuf)
}

// CheckBufferBounds validates a page size and buffer bounds for BufferSize.
// Both bounds must be page multiples, otherwise rounding a file size up to
// whole pages could land between them.
func CheckBufferBounds(pageSize, minBuf, maxBuf int) error {
	switch {
	case pageSize <= 0:
		return MemOpFailed("page size must be positive")
	case minBuf <= 0:
		return MemOpFailed("minimum buffer size must be positive")
	case maxBuf < minBuf:
		return MemOpFailed("maximum buffer size is below minimum buffer size")
	case uint64(maxBuf) > math.MaxInt32:
		return MemOpFailed("maximum buffer size exceeds 2 GiB")
	case minBuf%pageSize != 0:
		return MemOpFailed("minimum buffer size is not a multiple of the page size")
	case maxBuf%pageSize != 0:
		return MemOpFailed("maximum buffer size is not a multiple of the page size")
	}
	return nil
}

// BufferBounds are the scratch buffer limits a Reader sizes its buffer
// with. The zero value means [MinReadBufSize, MaxReadBufSize].
type BufferBounds struct {
	Min int
	Max int
}

func (b BufferBounds) resolve() BufferBounds {
	if b.Min <= 0 {
		b.Min = MinReadBufSize()
	}
	if b.Max <= 0 {
		b.Max = MaxReadBufSize
	}
	return b
}

// Validate checks the bounds with CheckBufferBounds.
func (b BufferBounds) Validate() error {
	r := b.resolve()
	return CheckBufferBounds(pagesize.Get(), r.Min, r.Max)
}

// Size returns the scratch buffer size for a file of fileSize bytes.
func (b BufferBounds) Size(fileSize uint64) int {
	r := b.resolve()
	return BufferSize(fileSize, pagesize.Get(), r.Min, r.Max)
}
