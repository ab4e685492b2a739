package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lukaspustina/fastfile/pkg/fastfile"
)

// Method names reported in results, besides the strategy names.
const (
	MethodStdlib = "stdlib"
)

// checksum is a running byte sum that keeps the compiler from discarding
// reads.
type checksum struct {
	bytes uint64
	sum   uint64
}

func (c *checksum) add(p []byte) {
	c.bytes += uint64(len(p))
	for _, b := range p {
		c.sum += uint64(b)
	}
}

func (c *checksum) verify(f File) error {
	if c.bytes != f.Size {
		return fmt.Errorf("read %d bytes from %s, want %d", c.bytes, f.Path, f.Size)
	}
	return nil
}

// NextMethod drains a file with Reader.Next through s.
func NextMethod(s fastfile.Strategy) func(File) error {
	return func(f File) error {
		r, err := fastfile.Read(f.Path).OpenWithStrategy(s)
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()

		var c checksum
		for {
			chunk, err := r.Next()
			c.add(chunk)
			if err != nil {
				if fastfile.IsInterrupted(err) {
					continue
				}
				return err
			}
			if len(chunk) == 0 {
				break
			}
		}
		return c.verify(f)
	}
}

// ReadToEndMethod reads a file with Reader.ReadToEnd through s.
func ReadToEndMethod(s fastfile.Strategy) func(File) error {
	return func(f File) error {
		r, err := fastfile.Read(f.Path).OpenWithStrategy(s)
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()

		data, err := r.ReadToEnd()
		if err != nil {
			return err
		}

		var c checksum
		c.add(data)
		return c.verify(f)
	}
}

// StdlibMethod reads a file through a bufio.Reader with a buffer of
// MaxReadBufSize as a baseline.
func StdlibMethod(f File) error {
	file, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	br := bufio.NewReaderSize(file, fastfile.MaxReadBufSize)
	buf := make([]byte, fastfile.MaxReadBufSize)

	var c checksum
	for {
		n, err := br.Read(buf)
		c.add(buf[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	return c.verify(f)
}
