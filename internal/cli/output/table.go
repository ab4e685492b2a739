package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableRenderer is implemented by results that print as a table.
type TableRenderer interface {
	Headers() []string
	Rows() [][]string
}

// Table is an ad-hoc TableRenderer.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable returns an empty table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *Table) Headers() []string { return t.headers }
func (t *Table) Rows() [][]string  { return t.rows }

// newWriter returns a borderless tablewriter with columns separated by two
// spaces.
func newWriter(w io.Writer) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("")
	tw.SetRowSeparator("")
	tw.SetHeaderLine(false)
	tw.SetBorder(false)
	tw.SetTablePadding("  ")
	tw.SetNoWhiteSpace(true)
	return tw
}

// PrintTable writes data with upper-cased headers.
func PrintTable(w io.Writer, data TableRenderer) error {
	tw := newWriter(w)
	tw.SetAutoFormatHeaders(true)
	tw.SetHeader(data.Headers())
	tw.AppendBulk(data.Rows())
	tw.Render()
	return nil
}

// PrintKeyValues writes "key:  value" lines with the values aligned.
func PrintKeyValues(w io.Writer, pairs [][2]string) error {
	tw := newWriter(w)
	tw.SetAutoFormatHeaders(false)
	for _, p := range pairs {
		tw.Append([]string{p[0] + ":", p[1]})
	}
	tw.Render()
	return nil
}
