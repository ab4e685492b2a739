// Package pagesize exposes the process-wide memory page size.
//
// The value is probed once, on first use, and never changes afterwards.
// Buffer sizing and page-cache accounting both depend on it, so a broken
// probe is treated as a fatal startup condition rather than an error the
// caller could recover from.
package pagesize

import (
	"fmt"
	"sync"
)

var (
	once  sync.Once
	value int
)

// Get returns the page size of the running system.
//
// Get panics if the platform reports a page size that is not a positive
// power of two.
func Get() int {
	once.Do(func() {
		n := probe()
		if err := Validate(n); err != nil {
			panic(fmt.Sprintf("pagesize: %v", err))
		}
		value = n
	})
	return value
}

// Validate reports whether n is usable as a page size.
func Validate(n int) error {
	if n <= 0 {
		return fmt.Errorf("invalid page size %d: must be positive", n)
	}
	if n&(n-1) != 0 {
		return fmt.Errorf("invalid page size %d: must be a power of two", n)
	}
	return nil
}

// Pages returns the number of pages needed to cover size bytes.
func Pages(size uint64) uint64 {
	ps := uint64(Get())
	return size/ps + min(size%ps, 1)
}
