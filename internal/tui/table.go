package tui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TableColumn defines a column in a table.
type TableColumn struct {
	Name  string
	Width int
}

// Table provides styled fixed-width table rendering.
type Table struct {
	w       io.Writer
	styles  *OutputStyles
	columns []TableColumn
}

// NewTable creates a new table with the given columns.
func NewTable(w io.Writer, columns []TableColumn) *Table {
	return &Table{
		w:       w,
		styles:  NewOutputStyles(),
		columns: columns,
	}
}

// WriteHeader writes the table header row.
func (t *Table) WriteHeader() {
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cells[i] = pad(col.Name, col.Width)
	}
	_, _ = fmt.Fprintln(t.w, t.styles.Header.Render(strings.Join(cells, "  ")))
}

// WriteRow writes one data row. Values beyond the column count are ignored;
// overlong values are truncated with an ellipsis.
func (t *Table) WriteRow(values ...string) {
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		cells[i] = pad(truncateCell(value, col.Width), col.Width)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(cells, "  "))
}

// pad right-pads a string to the given display width.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// truncateCell shortens a string to the given display width, ending with an
// ellipsis when truncated.
func truncateCell(s string, width int) string {
	if utf8.RuneCountInString(s) <= width || width < 1 {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}
