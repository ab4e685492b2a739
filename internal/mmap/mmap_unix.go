//go:build unix

package mmap

import "golang.org/x/sys/unix"

// Map creates a read-only mapping of the first length bytes of fd.
// With private set the mapping is MAP_PRIVATE, otherwise MAP_SHARED.
func Map(fd int, length int, private bool) (*Region, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}

	flags := unix.MAP_SHARED
	if private {
		flags = unix.MAP_PRIVATE
	}

	data, err := unix.Mmap(fd, 0, length, unix.PROT_READ, flags)
	if err != nil {
		return nil, &Error{Op: "mmap", Err: err}
	}

	return &Region{data: data, private: private}, nil
}

// Close releases the mapping. Calling Close more than once is safe.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}

	err := unix.Munmap(r.data)
	r.data = nil
	if err != nil {
		return &Error{Op: "munmap", Err: err}
	}
	return nil
}

// Advise passes an access pattern hint for the whole region to the kernel.
func (r *Region) Advise(advice int) error {
	if r.data == nil {
		return ErrNotMapped
	}

	var sys int
	switch advice {
	case AdviceSequential:
		sys = unix.MADV_SEQUENTIAL
	case AdviceRandom:
		sys = unix.MADV_RANDOM
	case AdviceWillNeed:
		sys = unix.MADV_WILLNEED
	case AdviceDontNeed:
		sys = unix.MADV_DONTNEED
	default:
		sys = unix.MADV_NORMAL
	}

	if err := unix.Madvise(r.data, sys); err != nil {
		return &Error{Op: "madvise", Err: err}
	}
	return nil
}
