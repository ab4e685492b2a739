package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("SizeAndDigest", func(t *testing.T) {
		path, digest := CreateRandomFile(t, dir, 100_003, 1)

		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.EqualValues(t, 100_003, fi.Size())

		got, err := DigestFile(path)
		require.NoError(t, err)
		assert.Equal(t, digest, got)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, digest, Digest(data))
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := FillFile(dir+"/a", 5000, 42)
		require.NoError(t, err)
		b, err := FillFile(dir+"/b", 5000, 42)
		require.NoError(t, err)
		c, err := FillFile(dir+"/c", 5000, 43)
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.NotEqual(t, a, c)
	})

	t.Run("Empty", func(t *testing.T) {
		path, digest := CreateRandomFile(t, dir, 0, 7)
		assert.Equal(t, Digest(nil), digest)

		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, fi.Size())
	})

	t.Run("MissingDir", func(t *testing.T) {
		_, err := FillFile(dir+"/missing/x", 10, 1)
		require.Error(t, err)
	})
}
