package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "table", want: FormatTable},
		{input: "", want: FormatTable},
		{input: "JSON", want: FormatJSON},
		{input: "yml", want: FormatYAML},
		{input: "  yaml ", want: FormatYAML},
		{input: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type residency struct {
	Path   string  `json:"path" yaml:"path"`
	Ratio  float64 `json:"ratio" yaml:"ratio"`
	Cached uint64  `json:"cached_pages" yaml:"cached_pages"`
}

func (r residency) Headers() []string { return []string{"Path", "Cached"} }
func (r residency) Rows() [][]string  { return [][]string{{r.Path, "3"}} }

func TestPrinterPrint(t *testing.T) {
	data := residency{Path: "/data/a.bin", Ratio: 0.75, Cached: 3}

	tests := []struct {
		format Format
		want   []string
	}{
		{FormatTable, []string{"PATH", "CACHED", "/data/a.bin"}},
		{FormatJSON, []string{`"path": "/data/a.bin"`, `"cached_pages": 3`}},
		{FormatYAML, []string{"path: /data/a.bin", "ratio: 0.75"}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewPrinter(&buf, tt.format, false).Print(data))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}

	t.Run("TableFallsBackToJSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatTable, false).Print(map[string]int{"n": 1}))
		assert.Contains(t, buf.String(), `"n": 1`)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		assert.Error(t, NewPrinter(&bytes.Buffer{}, Format("xml"), false).Print(data))
	})
}

func TestPrinterStatus(t *testing.T) {
	var plain, colored bytes.Buffer

	NewPrinter(&plain, FormatTable, false).Success("done")
	assert.Equal(t, "done\n", plain.String())

	p := NewPrinter(&colored, FormatTable, true)
	p.Warning("careful")
	p.Error("failed")
	assert.Equal(t, "\033[33mcareful\033[0m\n\033[31mfailed\033[0m\n", colored.String())
}

func TestTable(t *testing.T) {
	table := NewTable("Strategy", "Mean")
	table.AddRow("mmap", "1.00 ms")
	table.AddRow("direct", "2.00 ms")

	assert.Equal(t, []string{"Strategy", "Mean"}, table.Headers())
	require.Len(t, table.Rows(), 2)

	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, table))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "STRATEGY")
	assert.Contains(t, lines[2], "direct")
}

func TestPrintKeyValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintKeyValues(&buf, [][2]string{{"Path", "/a"}, {"Go version", "go1.25"}}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Path:"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Go version:"), lines[1])

	// Values start in the same column.
	assert.Equal(t, strings.Index(lines[0], "/a"), strings.Index(lines[1], "go1.25"))
}
