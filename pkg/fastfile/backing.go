package fastfile

import (
	"errors"
	"io"
	"math"
	"os"

	"github.com/lukaspustina/fastfile/internal/mmap"
)

// BackingKind identifies which byte source a Backing reads from.
type BackingKind int

const (
	// BackingDirect reads through the file descriptor.
	BackingDirect BackingKind = iota

	// BackingMapped reads from a read-only memory mapping of the file.
	BackingMapped
)

func (k BackingKind) String() string {
	switch k {
	case BackingDirect:
		return "direct"
	case BackingMapped:
		return "mmap"
	default:
		return "unknown"
	}
}

// Backing is the byte source behind a Reader. It is one of two variants,
// selected at construction and fixed for its lifetime:
//
//   - BackingDirect delegates to sequential reads on the file descriptor.
//   - BackingMapped maps the file read-only and copies from a cursor.
//
// A Backing owns its file; Close releases the mapping (if any) and then
// the file, exactly once. The mapped view is a snapshot: mutations of the
// file by other processes during the Backing's lifetime are not guarded
// against.
type Backing struct {
	kind   BackingKind
	file   *os.File
	src    io.Reader // direct: the file
	region *mmap.Region
	off    int
}

// NewDirectBacking returns a Backing that reads f through its descriptor.
func NewDirectBacking(f *os.File) *Backing {
	return &Backing{kind: BackingDirect, file: f, src: f}
}

// NewMappedBacking maps f read-only and returns a Backing reading from the
// mapping. The mapping covers the whole file as observed by Stat; explicit
// sizes and size hints never shorten it.
//
// Mapping an empty file fails with ErrEmptyMapping; mmap failures are
// returned as KindFileOp errors. f is not closed on failure.
func NewMappedBacking(f *os.File) (*Backing, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, FileOpFailed("stat", err)
	}

	length := uint64(fi.Size())
	if length == 0 {
		return nil, FileOpFailed("mmap", ErrEmptyMapping)
	}
	if length > math.MaxInt {
		return nil, MemOpFailed("file too large to map")
	}

	region, err := mmap.Map(int(f.Fd()), int(length), false)
	if err != nil {
		return nil, FileOpFailed("mmap", libcCause("mmap", err))
	}

	return &Backing{kind: BackingMapped, file: f, region: region}, nil
}

// Kind returns the backing variant.
func (b *Backing) Kind() BackingKind {
	return b.kind
}

// File returns the underlying file.
func (b *Backing) File() *os.File {
	return b.file
}

// Read reads up to len(p) bytes into p. It follows the io.Reader contract:
// short reads are allowed and end of stream is reported as (0, io.EOF).
// Errors from the descriptor, including interrupted system calls, are
// returned unchanged and never retried.
func (b *Backing) Read(p []byte) (int, error) {
	switch b.kind {
	case BackingDirect:
		return b.src.Read(p)
	case BackingMapped:
		data := b.region.Bytes()
		if data == nil {
			return 0, os.ErrClosed
		}
		if b.off >= len(data) {
			return 0, io.EOF
		}
		n := copy(p, data[b.off:])
		b.off += n
		return n, nil
	default:
		panic("fastfile: unknown backing kind")
	}
}

// adviseSequential issues a sequential-access hint for a mapped backing.
func (b *Backing) adviseSequential() error {
	switch b.kind {
	case BackingDirect:
		return nil
	case BackingMapped:
		if err := b.region.Advise(mmap.AdviceSequential); err != nil {
			return FileOpFailed("madvise", libcCause("madvise", err))
		}
		return nil
	default:
		panic("fastfile: unknown backing kind")
	}
}

// Close releases the mapping, if any, and closes the file.
func (b *Backing) Close() error {
	var errs []error

	switch b.kind {
	case BackingDirect:
	case BackingMapped:
		if err := b.region.Close(); err != nil {
			errs = append(errs, FileOpFailed("munmap", libcCause("munmap", err)))
		}
	}

	if err := b.file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		errs = append(errs, FileOpFailed("close", err))
	}

	return errors.Join(errs...)
}

// libcCause turns an mmap package error into a LibcFailed error for the
// named system call, keeping the errno as cause.
func libcCause(syscallName string, err error) error {
	var me *mmap.Error
	if errors.As(err, &me) && me.Err != nil {
		return LibcFailed(syscallName, me.Err)
	}
	return err
}
