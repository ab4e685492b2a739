package pagecache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lukaspustina/fastfile/internal/pagesize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoRatio(t *testing.T) {
	assert.Zero(t, Info{}.Ratio())
	assert.InDelta(t, 0.25, Info{TotalPages: 4, CachedPages: 1}.Ratio(), 1e-9)
	assert.Equal(t, "1/4 pages cached (25.0%)", Info{TotalPages: 4, CachedPages: 1}.String())
}

func TestCountResident(t *testing.T) {
	assert.Zero(t, countResident(nil))
	assert.Equal(t, uint64(2), countResident([]byte{1, 0, 3, 2, 0}))
}

func TestInspectZeroSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	info, err := Inspect(f, 0)
	require.NoError(t, err)
	assert.Equal(t, Info{}, info)

	info, err = InspectPath(path)
	require.NoError(t, err)
	assert.Equal(t, Info{}, info)
}

func TestInspectPathMissing(t *testing.T) {
	_, err := InspectPath(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTotalPages(t *testing.T) {
	ps := uint64(pagesize.Get())
	assert.Equal(t, uint64(1), totalPages(1))
	assert.Equal(t, uint64(1), totalPages(ps))
	assert.Equal(t, uint64(2), totalPages(ps+1))
}
