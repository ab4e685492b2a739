package bytesize

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ByteSize
		wantErr bool
	}{
		{"plain zero", "0", 0, false},
		{"plain bytes", "1024", 1024, false},
		{"bytes suffix", "1024B", 1024, false},
		{"page", "4Ki", 4 * KiB, false},
		{"page long", "4KiB", 4 * KiB, false},
		{"range advise threshold", "10Mi", 10 * MiB, false},
		{"max buffer", "4MiB", 4 * MiB, false},
		{"gibibytes", "1Gi", GiB, false},
		{"tebibytes", "1Ti", TiB, false},
		{"decimal kilo", "1K", KB, false},
		{"decimal mega", "200MB", 200 * MB, false},
		{"decimal giga", "1G", GB, false},
		{"lowercase", "10mi", 10 * MiB, false},
		{"whitespace", "  1 Gi  ", GiB, false},
		{"float", "1.5Mi", ByteSize(1.5 * float64(MiB)), false},

		{"empty", "", 0, true},
		{"whitespace only", "   ", 0, true},
		{"unknown unit", "1Xi", 0, true},
		{"negative", "-1Gi", 0, true},
		{"no number", "Gi", 0, true},
		{"overflow", "99999999999Ti", 0, true},
		{"float overflow", "99999999999.5Ti", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseByteSize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestByteSize_String(t *testing.T) {
	tests := []struct {
		size ByteSize
		want string
	}{
		{0, "0"},
		{1000, "1000"},
		{4 * KiB, "4Ki"},
		{10 * MiB, "10Mi"},
		{MiB + 1, "1048577"},
		{3 * GiB, "3Gi"},
		{2 * TiB, "2Ti"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.size.String())

			parsed, err := ParseByteSize(tt.size.String())
			require.NoError(t, err)
			assert.Equal(t, tt.size, parsed)
		})
	}
}

func TestByteSize_HumanString(t *testing.T) {
	assert.Equal(t, "512B", ByteSize(512).HumanString())
	assert.Equal(t, "1.50KiB", ByteSize(1536).HumanString())
	assert.Equal(t, "200.00MiB", (200 * MiB).HumanString())
}

func TestByteSize_YAML(t *testing.T) {
	type doc struct {
		Size ByteSize `yaml:"size"`
	}

	var d doc
	require.NoError(t, yaml.Unmarshal([]byte("size: 10Mi\n"), &d))
	assert.Equal(t, 10*MiB, d.Size)

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "size: 10Mi\n", string(out))
}

func TestByteSize_Flag(t *testing.T) {
	var size ByteSize
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&size, "size", "file size")

	require.NoError(t, fs.Parse([]string{"--size", "200Mi"}))
	assert.Equal(t, 200*MiB, size)
	assert.Equal(t, "bytesize", fs.Lookup("size").Value.Type())

	require.Error(t, fs.Parse([]string{"--size", "lots"}))
}

func TestByteSize_Conversions(t *testing.T) {
	assert.Equal(t, uint64(1024), KiB.Uint64())
	assert.Equal(t, int64(1024), KiB.Int64())
	assert.Equal(t, 1024, KiB.Int())
	assert.Equal(t, int64(1<<63-1), ByteSize(1<<64-1).Int64())
}
