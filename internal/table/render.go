package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render emits the table in canonical form: one line per row, cells joined
// with " | " and wrapped in leading/trailing pipes. Separator cells keep
// the alignment markers they were parsed with, so a reordered table keeps
// each column's alignment. The output parses back to an equal Table.
func (t *Table) Render() []string {
	lines := make([]string, 0, len(t.Rows)+2)
	lines = append(lines, renderRow(t.Header))
	lines = append(lines, renderRow(t.separatorCells()))
	for _, row := range t.Rows {
		lines = append(lines, renderRow(row))
	}
	return lines
}

// RenderAligned emits the table with every cell padded to its column's
// display width, the way hand-written note tables usually look. Widths are
// measured with runewidth so CJK and emoji cells line up. The output is
// still valid input for Parse.
func (t *Table) RenderAligned() []string {
	cols := t.Columns()
	widths := make([]int, cols)
	measure := func(row Row) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Header)
	for _, row := range t.Rows {
		measure(row)
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	sep := make(Row, cols)
	for i, cell := range t.separatorCells() {
		w := widths[i]
		switch {
		case strings.HasPrefix(cell, ":") && strings.HasSuffix(cell, ":"):
			sep[i] = ":" + strings.Repeat("-", w-2) + ":"
		case strings.HasSuffix(cell, ":"):
			sep[i] = strings.Repeat("-", w-1) + ":"
		case strings.HasPrefix(cell, ":"):
			sep[i] = ":" + strings.Repeat("-", w-1)
		default:
			sep[i] = strings.Repeat("-", w)
		}
	}

	pad := func(row Row) string {
		padded := make([]string, cols)
		for i, cell := range row {
			padded[i] = cell + strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
		}
		return "| " + strings.Join(padded, " | ") + " |"
	}

	lines := make([]string, 0, len(t.Rows)+2)
	lines = append(lines, pad(t.Header))
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")
	for _, row := range t.Rows {
		lines = append(lines, pad(row))
	}
	return lines
}

func renderRow(row Row) string {
	return "| " + strings.Join(row, " | ") + " |"
}

// separatorCells returns the separator row, defaulting any empty cell to
// "---" so tables built in code render a valid separator.
func (t *Table) separatorCells() Row {
	sep := make(Row, t.Columns())
	for i := range sep {
		if i < len(t.Separator) && t.Separator[i] != "" {
			sep[i] = t.Separator[i]
		} else {
			sep[i] = "---"
		}
	}
	return sep
}
