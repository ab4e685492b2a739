package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lukaspustina/fastfile/internal/bytesize"
	"github.com/lukaspustina/fastfile/internal/testutil"
)

// DefaultFileSizes are the file sizes benchmarked when none are configured.
var DefaultFileSizes = []uint64{
	1 << 10,
	2 << 10,
	4 << 10,
	8 << 10,
	16 << 10,
	64 << 10,
	256 << 10,
	1 << 20,
	2 << 20,
	8 << 20,
	10 << 20,
	50 << 20,
	100 << 20,
	200 << 20,
}

// File is a generated benchmark file.
type File struct {
	Path   string
	Size   uint64
	Digest string
}

// PrepareFiles creates one pseudo-random file per size in dir and returns
// them as benchmark params. The seed makes the content reproducible. On
// error, files created so far are removed.
func PrepareFiles(dir string, sizes []uint64, seed uint64) ([]Param[File], error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create benchmark directory: %w", err)
	}

	params := make([]Param[File], 0, len(sizes))
	for i, size := range sizes {
		if size > uint64(1<<62) {
			_ = Cleanup(params)
			return nil, fmt.Errorf("benchmark file size %d too large", size)
		}

		path := filepath.Join(dir, fmt.Sprintf("fastfile-bench-%d.bin", size))
		digest, err := testutil.FillFile(path, int64(size), seed+uint64(i))
		if err != nil {
			_ = Cleanup(params)
			return nil, err
		}

		params = append(params, Param[File]{
			Name:    strconv.FormatUint(size, 10),
			Display: bytesize.ByteSize(size).String(),
			Amount:  size,
			Value:   File{Path: path, Size: size, Digest: digest},
		})
	}
	return params, nil
}

// Cleanup removes the files of params.
func Cleanup(params []Param[File]) error {
	var errs []error
	for _, p := range params {
		if err := os.Remove(p.Value.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
