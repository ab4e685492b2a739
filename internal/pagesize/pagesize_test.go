package pagesize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	ps := Get()
	require.NoError(t, Validate(ps))
	assert.Equal(t, ps, Get(), "page size must not change between calls")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"Zero", 0, true},
		{"Negative", -4096, true},
		{"NotPowerOfTwo", 3000, true},
		{"One", 1, false},
		{"FourKiB", 4096, false},
		{"SixteenKiB", 16384, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.n)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPages(t *testing.T) {
	ps := uint64(Get())

	assert.Equal(t, uint64(0), Pages(0))
	assert.Equal(t, uint64(1), Pages(1))
	assert.Equal(t, uint64(1), Pages(ps))
	assert.Equal(t, uint64(2), Pages(ps+1))
	assert.Equal(t, uint64(3), Pages(3*ps))
}
