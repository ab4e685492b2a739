//go:build unix

package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFixture(t *testing.T, data []byte) *os.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "region.dat")
	require.NoError(t, os.WriteFile(path, data, 0644))

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestMap(t *testing.T) {
	data := []byte("hello world test data for mmap")

	t.Run("Shared", func(t *testing.T) {
		f := openFixture(t, data)

		r, err := Map(int(f.Fd()), len(data), false)
		require.NoError(t, err)
		defer r.Close()

		assert.Equal(t, data, r.Bytes())
		assert.Equal(t, len(data), r.Len())
		assert.False(t, r.Private())
	})

	t.Run("Private", func(t *testing.T) {
		f := openFixture(t, data)

		r, err := Map(int(f.Fd()), len(data), true)
		require.NoError(t, err)
		defer r.Close()

		assert.Equal(t, data, r.Bytes())
		assert.True(t, r.Private())
	})

	t.Run("Prefix", func(t *testing.T) {
		f := openFixture(t, data)

		r, err := Map(int(f.Fd()), 5, false)
		require.NoError(t, err)
		defer r.Close()

		assert.Equal(t, []byte("hello"), r.Bytes())
	})
}

func TestMapInvalidSize(t *testing.T) {
	f := openFixture(t, []byte("x"))

	_, err := Map(int(f.Fd()), 0, false)
	assert.Equal(t, ErrInvalidSize, err)

	_, err = Map(int(f.Fd()), -1, false)
	assert.Equal(t, ErrInvalidSize, err)
}

func TestClose(t *testing.T) {
	f := openFixture(t, []byte("close test"))

	r, err := Map(int(f.Fd()), 10, false)
	require.NoError(t, err)

	require.NoError(t, r.Close())
	assert.Nil(t, r.Bytes())
	assert.Equal(t, 0, r.Len())

	// Double close should be safe
	require.NoError(t, r.Close())

	assert.Equal(t, ErrNotMapped, r.Advise(AdviceSequential))
}

func TestAdvise(t *testing.T) {
	f := openFixture(t, make([]byte, 4096))

	r, err := Map(int(f.Fd()), 4096, false)
	require.NoError(t, err)
	defer r.Close()

	for _, advice := range []int{AdviceNormal, AdviceSequential, AdviceRandom, AdviceWillNeed} {
		assert.NoError(t, r.Advise(advice))
	}
}
