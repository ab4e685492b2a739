package fastfile

import (
	"io"
	"time"

	"github.com/lukaspustina/fastfile/pkg/bufpool"
)

type drainMode int

const (
	drainUnset drainMode = iota
	drainIncremental
	drainAll
)

// Reader reads a file through a Backing with a reusable scratch buffer.
//
// A Reader is drained either incrementally, with Next or Read, or at once,
// with ReadToEnd. The first call fixes the style; calling the other style
// afterwards fails with ErrMixedDrain.
//
// Slices returned by Next and ReadToEnd alias the scratch buffer and are
// valid until the next call or Close. A Reader is not safe for concurrent
// use.
type Reader struct {
	inner   *Backing
	size    uint64
	buf     []byte
	eof     bool
	mode    drainMode
	closed  bool
	bounds  BufferBounds
	metrics Metrics
}

// NewReader returns a Reader over inner for a file of the given size. The
// Reader owns inner and closes it on Close.
func NewReader(inner *Backing, size uint64) *Reader {
	return &Reader{inner: inner, size: size}
}

func newReader(inner *Backing, size uint64, hint HintClass, bounds BufferBounds, m Metrics) *Reader {
	if m != nil {
		m.ObserveOpen(inner.Kind(), hint)
	}
	return &Reader{inner: inner, size: size, bounds: bounds, metrics: m}
}

// Size returns the file size the Reader was built with.
func (r *Reader) Size() uint64 {
	return r.size
}

// Backend returns the kind of the underlying Backing.
func (r *Reader) Backend() BackingKind {
	return r.inner.Kind()
}

// BufferSize returns the scratch buffer size used by Next.
func (r *Reader) BufferSize() int {
	return r.bounds.Size(r.size)
}

func (r *Reader) scratch() []byte {
	if r.buf == nil {
		r.buf = bufpool.Get(r.BufferSize())
	}
	return r.buf
}

func (r *Reader) enter(mode drainMode) error {
	if r.closed {
		return ErrReaderClosed
	}
	if r.mode != drainUnset && r.mode != mode {
		return ErrMixedDrain
	}
	r.mode = mode
	return nil
}

// Next performs one read into the scratch buffer and returns the bytes
// read. At end of file it returns an empty slice and a nil error, on every
// call. Errors from the underlying read are returned unchanged together
// with any bytes read before the failure; an interrupted read (see
// IsInterrupted) may be retried.
func (r *Reader) Next() ([]byte, error) {
	if err := r.enter(drainIncremental); err != nil {
		return nil, err
	}

	buf := r.scratch()
	if r.eof {
		return buf[:0], nil
	}

	var start time.Time
	if r.metrics != nil {
		start = time.Now()
	}

	n, err := r.inner.Read(buf)
	if err == io.EOF {
		r.eof = true
		err = nil
	}

	if r.metrics != nil && n > 0 {
		r.metrics.ObserveRead(n, time.Since(start))
	}
	return buf[:n], err
}

// Read implements io.Reader on the underlying Backing, bypassing the
// scratch buffer. It counts as incremental draining.
func (r *Reader) Read(p []byte) (int, error) {
	if err := r.enter(drainIncremental); err != nil {
		return 0, err
	}
	if r.eof {
		return 0, io.EOF
	}

	n, err := r.inner.Read(p)
	if err == io.EOF {
		r.eof = true
	}
	return n, err
}

// ReadToEnd reads the remainder of the file into the scratch buffer,
// growing it as needed, and returns the bytes read by this call. Once the
// file is drained further calls return an empty slice. On error the bytes
// read so far are returned along with it.
func (r *Reader) ReadToEnd() ([]byte, error) {
	if err := r.enter(drainAll); err != nil {
		return nil, err
	}

	buf := r.scratch()[:0]
	if r.eof {
		return buf, nil
	}

	var start time.Time
	if r.metrics != nil {
		start = time.Now()
	}

	for {
		if len(buf) == cap(buf) {
			buf = r.grow(buf)
		}

		n, err := r.inner.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err == io.EOF {
			r.eof = true
			break
		}
		if err != nil {
			return buf, err
		}
	}

	if r.metrics != nil && len(buf) > 0 {
		r.metrics.ObserveRead(len(buf), time.Since(start))
	}
	return buf, nil
}

// grow doubles the scratch buffer, returning the old one to the pool when
// the new one replaces it.
func (r *Reader) grow(buf []byte) []byte {
	grown := make([]byte, len(buf), max(2*cap(buf), MinReadBufSize()))
	copy(grown, buf)

	bufpool.Put(r.buf)
	r.buf = grown[:cap(grown)]
	return grown
}

// Close releases the scratch buffer and closes the Backing. Calling Close
// again returns ErrReaderClosed.
func (r *Reader) Close() error {
	if r.closed {
		return ErrReaderClosed
	}
	r.closed = true

	bufpool.Put(r.buf)
	r.buf = nil
	return r.inner.Close()
}
