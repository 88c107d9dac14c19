package table

import (
	"fmt"
	"strings"
)

// Locate scans lines for the first pipe-table block: a line containing "|"
// immediately followed by a separator line made only of '-', ':', '|', and
// whitespace. It returns the half-open line range [start, end) covering the
// header, separator, and every consecutive row line after them.
//
// Files with more than one table are handled first-match: only the first
// block is located, matching the single-table assumption of the note files
// these tools operate on.
func Locate(lines []string) (start, end int, err error) {
	for i := 0; i+1 < len(lines); i++ {
		if !looksLikeRow(lines[i]) || !isSeparatorLine(lines[i+1]) {
			continue
		}

		end = i + 2
		for end < len(lines) && looksLikeRow(lines[end]) {
			end++
		}
		return i, end, nil
	}
	return 0, 0, ErrNoTable
}

// Parse tokenizes a located block into a Table. Every cell is trimmed, and
// leading/trailing empty cells produced by rows that start/end with "|" are
// dropped. A data row whose cell count differs from the header's is an
// error, not a best-effort fit: padding short rows would silently change
// what the data means.
func Parse(lines []string) (*Table, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need at least a header and separator, got %d lines",
			ErrMalformedTable, len(lines))
	}

	header := splitRow(lines[0])
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: header row has no cells", ErrMalformedTable)
	}

	if !isSeparatorLine(lines[1]) {
		return nil, fmt.Errorf("%w: second line is not a separator row", ErrMalformedTable)
	}
	separator := splitRow(lines[1])
	if len(separator) != len(header) {
		return nil, fmt.Errorf("%w: separator has %d cells, header has %d",
			ErrMalformedTable, len(separator), len(header))
	}

	t := &Table{Header: header, Separator: separator}
	for i, line := range lines[2:] {
		row := splitRow(line)
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d",
				ErrMalformedTable, i+1, len(row), len(header))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// splitRow splits a line on unescaped '|' delimiters. A backslash escapes
// the following byte, so "\|" stays inside its cell (the common way to put
// a literal pipe in a table cell).
func splitRow(line string) Row {
	var cells Row
	var cur strings.Builder

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && i+1 < len(line):
			cur.WriteByte(c)
			i++
			cur.WriteByte(line[i])
		case c == '|':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	cells = append(cells, strings.TrimSpace(cur.String()))

	// Rows written as "| a | b |" produce empty boundary cells.
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// looksLikeRow reports whether a line belongs to a table block.
func looksLikeRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && strings.Contains(trimmed, "|")
}

// isSeparatorLine reports whether a line is an alignment separator: at least
// one '-', and nothing but '-', ':', '|', and whitespace.
func isSeparatorLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || !strings.Contains(trimmed, "-") {
		return false
	}
	for _, r := range trimmed {
		switch r {
		case '-', ':', '|', ' ', '\t':
		default:
			return false
		}
	}
	return true
}
