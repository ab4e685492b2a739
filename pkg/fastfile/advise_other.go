//go:build !linux && !darwin

package fastfile

import "os"

// ReadAhead is a no-op on this platform.
func (SystemAdvisor) ReadAhead(*os.File) error { return nil }

// AdviseRange is a no-op on this platform.
func (SystemAdvisor) AdviseRange(*os.File, uint64, uint64) error { return nil }
