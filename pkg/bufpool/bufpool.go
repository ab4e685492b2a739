// Package bufpool provides a tiered pool of read buffers.
//
// Readers draw their scratch buffer from the pool when they first read and
// return it on Close, so reading many files in a row does not allocate a
// fresh multi-megabyte buffer per file. Pooled buffers are page aligned in
// size and zeroed only when first allocated; callers must not assume
// anything about their contents.
//
// Three size classes are kept:
//   - Page: one memory page, for files smaller than a page
//   - Medium (64 KiB): for small and medium files
//   - Large (4 MiB): the largest reader buffer
//
// Requests above the large class are allocated directly and never pooled.
//
// # Usage
//
//	buf := bufpool.Get(size)
//	defer bufpool.Put(buf)
package bufpool

import (
	"sync"

	"github.com/lukaspustina/fastfile/internal/pagesize"
)

// Default size classes.
const (
	// DefaultMediumSize is the medium class (64 KiB).
	DefaultMediumSize = 64 << 10

	// DefaultLargeSize is the large class (4 MiB).
	DefaultLargeSize = 4 << 20
)

// Pool is a set of sync.Pools, one per size class, ordered by size.
type Pool struct {
	sizes []int
	pools []sync.Pool
}

// Config holds the size classes of a custom pool.
type Config struct {
	// PageSize is the smallest class (default: system page size)
	PageSize int

	// MediumSize is the middle class (default: 64 KiB)
	MediumSize int

	// LargeSize is the largest pooled class (default: 4 MiB)
	LargeSize int
}

// DefaultConfig returns the default size classes.
func DefaultConfig() Config {
	return Config{
		PageSize:   pagesize.Get(),
		MediumSize: DefaultMediumSize,
		LargeSize:  DefaultLargeSize,
	}
}

// NewPool creates a pool with the given classes. Zero or negative classes
// take their default; classes that are not larger than the previous one
// are dropped.
func NewPool(cfg Config) *Pool {
	def := DefaultConfig()
	if cfg.PageSize <= 0 {
		cfg.PageSize = def.PageSize
	}
	if cfg.MediumSize <= 0 {
		cfg.MediumSize = def.MediumSize
	}
	if cfg.LargeSize <= 0 {
		cfg.LargeSize = def.LargeSize
	}

	p := &Pool{}
	for _, size := range []int{cfg.PageSize, cfg.MediumSize, cfg.LargeSize} {
		if len(p.sizes) > 0 && size <= p.sizes[len(p.sizes)-1] {
			continue
		}
		p.sizes = append(p.sizes, size)
	}

	p.pools = make([]sync.Pool, len(p.sizes))
	for i, size := range p.sizes {
		p.pools[i].New = func() any {
			buf := make([]byte, size)
			return &buf
		}
	}
	return p
}

// Classes returns the pooled size classes in ascending order.
func (p *Pool) Classes() []int {
	return append([]int(nil), p.sizes...)
}

// Get returns a slice of length size. Its capacity is that of the smallest
// class holding size; sizes above the largest class are allocated directly.
func (p *Pool) Get(size int) []byte {
	for i, classSize := range p.sizes {
		if size <= classSize {
			bufPtr := p.pools[i].Get().(*[]byte)
			return (*bufPtr)[:size]
		}
	}
	return make([]byte, size)
}

// Put returns a buffer obtained from Get. Buffers whose capacity does not
// match a class exactly are left to the garbage collector.
func (p *Pool) Put(buf []byte) {
	if buf == nil {
		return
	}

	c := cap(buf)
	for i, classSize := range p.sizes {
		if c == classSize {
			full := buf[:c]
			p.pools[i].Put(&full)
			return
		}
	}
}

// =============================================================================
// Global Pool
// =============================================================================

var globalPool = NewPool(DefaultConfig())

// Get returns a buffer of length size from the global pool.
func Get(size int) []byte {
	return globalPool.Get(size)
}

// Put returns a buffer to the global pool.
func Put(buf []byte) {
	globalPool.Put(buf)
}
