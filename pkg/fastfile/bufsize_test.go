package fastfile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPage = 4096
	testMin  = 4096
	testMax  = 4 << 20
)

func TestBufferSize(t *testing.T) {
	tests := []struct {
		name     string
		fileSize uint64
		want     int
	}{
		{"zero", 0, testMin},
		{"one byte", 1, testMin},
		{"below min", testMin - 1, testMin},
		{"exactly min", testMin, testMin},
		{"one above min", testMin + 1, 2 * testPage},
		{"page multiple", 10 * testPage, 10 * testPage},
		{"rounds up to page", 10*testPage + 17, 11 * testPage},
		{"one below max", testMax - 1, testMax},
		{"exactly max", testMax, testMax},
		{"one above max", testMax + 1, testMax},
		{"huge", 500 << 30, testMax},
		{"max uint64", math.MaxUint64, testMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BufferSize(tt.fileSize, testPage, testMin, testMax)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBufferSize_Contract(t *testing.T) {
	prev := 0
	for s := uint64(0); s <= 2*testMax; s += 511 {
		got := BufferSize(s, testPage, testMin, testMax)

		assert.GreaterOrEqual(t, got, testMin)
		assert.LessOrEqual(t, got, testMax)
		assert.GreaterOrEqual(t, got, prev, "not monotonic at %d", s)
		assert.Zero(t, got%testPage, "not page aligned at %d", s)

		prev = got
	}
}

func TestBufferSize_MinAboveOnePage(t *testing.T) {
	assert.Equal(t, 3*testPage, BufferSize(1, testPage, 3*testPage, testMax))
	assert.Equal(t, 4*testPage, BufferSize(3*testPage+1, testPage, 3*testPage, testMax))
}

func TestOptimalBufferSize(t *testing.T) {
	minBuf := MinReadBufSize()

	assert.Equal(t, minBuf, OptimalBufferSize(0))
	assert.Equal(t, minBuf, OptimalBufferSize(1))
	assert.Equal(t, 2*minBuf, OptimalBufferSize(uint64(minBuf)+1))
	assert.Equal(t, MaxReadBufSize, OptimalBufferSize(10<<20))
}

func TestCheckBufferBounds(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		min     int
		max     int
		wantErr bool
	}{
		{"defaults", testPage, testMin, testMax, false},
		{"min equals max", testPage, testMin, testMin, false},
		{"zero page", 0, testMin, testMax, true},
		{"negative page", -1, testMin, testMax, true},
		{"zero min", testPage, 0, testMax, true},
		{"max below min", testPage, testMax, testMin, true},
		{"max too large", testPage, testMin, math.MaxInt32 + 1, true},
		{"min not page aligned", testPage, 5000, testMax, true},
		{"max not page aligned", testPage, testMin, testMax + 1, true},
		{"min several pages", testPage, 3 * testPage, testMax, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBufferBounds(tt.page, tt.min, tt.max)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, HasKind(err, KindMemOp))
		})
	}
}
