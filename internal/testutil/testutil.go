// Package testutil generates deterministic test files and reference
// digests for reader tests and benchmarks.
package testutil

import (
	"bufio"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
)

const chunkSize = 64 << 10

// FillFile writes size pseudo-random bytes derived from seed to path and
// returns their hex SHA-256 digest. The same seed always produces the same
// content.
func FillFile(path string, size int64, seed uint64) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	h := sha256.New()
	w := bufio.NewWriterSize(io.MultiWriter(f, h), chunkSize)

	if err := writeRandom(w, size, seed); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("sync %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func writeRandom(w io.Writer, size int64, seed uint64) error {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	chunk := make([]byte, chunkSize)

	for remaining := size; remaining > 0; {
		for i := 0; i+8 <= len(chunk); i += 8 {
			binary.LittleEndian.PutUint64(chunk[i:], rng.Uint64())
		}

		n := int(min(remaining, int64(len(chunk))))
		if _, err := w.Write(chunk[:n]); err != nil {
			return err
		}
		remaining -= int64(n)
	}
	return nil
}

// DigestFile returns the hex SHA-256 digest of the file at path, read
// through a plain buffered reader.
func DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, bufio.NewReaderSize(f, chunkSize)); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Digest returns the hex SHA-256 digest of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// CreateRandomFile creates a file of size bytes in dir and returns its path
// and digest. The test fails if the file cannot be written.
func CreateRandomFile(t testing.TB, dir string, size int64, seed uint64) (string, string) {
	t.Helper()

	path := filepath.Join(dir, fmt.Sprintf("random-%d-%d.bin", size, seed))
	digest, err := FillFile(path, size, seed)
	if err != nil {
		t.Fatalf("failed to create random file: %v", err)
	}
	return path, digest
}
