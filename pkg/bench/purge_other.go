//go:build !linux && !darwin

package bench

// Purge is not supported on this platform.
func Purge(string) error {
	return ErrPurgeUnsupported
}
