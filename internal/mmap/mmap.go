// Package mmap provides read-only memory mappings of regular files.
package mmap

// Region is a read-only mapping of a file prefix.
// The mapping does not own the file descriptor it was created from.
type Region struct {
	data    []byte
	private bool
}

// Bytes returns the mapped memory, or nil once the region is closed.
// The slice must not be retained past Close.
func (r *Region) Bytes() []byte {
	return r.data
}

// Len returns the mapped length in bytes.
func (r *Region) Len() int {
	return len(r.data)
}

// Private reports whether the region was mapped with MAP_PRIVATE.
func (r *Region) Private() bool {
	return r.private
}

// Error represents an mmap error.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "mmap: " + e.Op + ": " + e.Err.Error()
	}
	return "mmap: " + e.Op
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrInvalidSize = &Error{Op: "invalid size"}
	ErrNotMapped   = &Error{Op: "not mapped"}
	ErrUnsupported = &Error{Op: "not supported on this platform"}
)

// Access patterns accepted by Advise.
const (
	AdviceNormal = iota
	AdviceSequential
	AdviceRandom
	AdviceWillNeed
	AdviceDontNeed
)
