//go:build !unix

package mmap

// Map is not supported on this platform.
func Map(fd int, length int, private bool) (*Region, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}
	return nil, ErrUnsupported
}

// Close is a no-op on this platform.
func (r *Region) Close() error {
	r.data = nil
	return nil
}

// Advise is a no-op on this platform.
func (r *Region) Advise(advice int) error {
	if r.data == nil {
		return ErrNotMapped
	}
	return nil
}
