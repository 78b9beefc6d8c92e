package output

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// TableRenderer is implemented by types that can render themselves as a table.
type TableRenderer interface {
	Headers() []string
	Rows() [][]string
}

// PrintTable writes data as a borderless table with upper-cased headers.
// Each row is fitted to the header width; empty cells print as "-".
func PrintTable(w io.Writer, data TableRenderer) error {
	headers := data.Headers()

	table := newTable(w, "")
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(true)
	for _, row := range data.Rows() {
		table.Append(cells(row, len(headers)))
	}

	table.Render()
	return nil
}

// TableData is a simple implementation of TableRenderer for ad-hoc tables.
type TableData struct {
	headers []string
	rows    [][]string
}

// NewTableData creates a new TableData with the given headers.
func NewTableData(headers ...string) *TableData {
	return &TableData{
		headers: headers,
		rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table.
func (t *TableData) AddRow(row ...string) {
	t.rows = append(t.rows, row)
}

// Headers implements TableRenderer.
func (t *TableData) Headers() []string {
	return t.headers
}

// Rows implements TableRenderer.
func (t *TableData) Rows() [][]string {
	return t.rows
}

// SimpleTable prints "key: value" lines, one per pair, for describe
// commands.
func SimpleTable(w io.Writer, pairs [][2]string) error {
	table := newTable(w, ":")
	for _, pair := range pairs {
		table.Append(cells(pair[:], 2))
	}

	table.Render()
	return nil
}

func newTable(w io.Writer, columnSeparator string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator(columnSeparator)
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}

// cells pads or cuts row to width columns (width 0 keeps the row as is),
// flattens embedded newlines and replaces blank cells with "-".
func cells(row []string, width int) []string {
	if width == 0 {
		width = len(row)
	}
	out := make([]string, width)
	for i := range out {
		var v string
		if i < len(row) {
			v = strings.TrimSpace(strings.ReplaceAll(row[i], "\n", " "))
		}
		if v == "" {
			v = "-"
		}
		out[i] = v
	}
	return out
}
