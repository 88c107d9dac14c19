// Package table locates, parses, transforms, and renders Markdown pipe
// tables. Parsing is an explicit tokenizer over lines rather than regex
// substitution so that cell counts can be validated eagerly and the render
// output round-trips through the parser.
package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoTable is returned when a document contains no pipe table.
	ErrNoTable = errors.New("no markdown table found")

	// ErrMalformedTable is returned when a row's cell count does not match
	// the header's. Short rows are rejected, never padded.
	ErrMalformedTable = errors.New("malformed table")

	// ErrInvalidPermutation is returned when a column order is not a
	// bijection on the table's column indices.
	ErrInvalidPermutation = errors.New("invalid column order")
)

// Row is an ordered sequence of cells. Cell text is stored trimmed; the
// renderer re-applies canonical single-space padding.
type Row []string

// Table is a parsed pipe table: a header, the alignment separator, and zero
// or more data rows. All rows hold the same number of cells.
type Table struct {
	Header    Row
	Separator Row
	Rows      []Row
}

// Columns returns the table's column count.
func (t *Table) Columns() int {
	return len(t.Header)
}

// ColumnOrder is a permutation of original column indices: output column i
// takes its cells from input column order[i].
type ColumnOrder []int

// ParseOrder reads a column order from its command-line form, a comma or
// space separated list of zero-based indices like "2,0,1" or "2 0 1".
func ParseOrder(s string) (ColumnOrder, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty order %q", ErrInvalidPermutation, s)
	}

	order := make(ColumnOrder, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an index", ErrInvalidPermutation, f)
		}
		order = append(order, n)
	}
	return order, nil
}

// Validate checks that the order is a permutation of [0, columns): right
// length, no duplicates, no out-of-range indices.
func (o ColumnOrder) Validate(columns int) error {
	if len(o) != columns {
		return fmt.Errorf("%w: order has %d indices, table has %d columns",
			ErrInvalidPermutation, len(o), columns)
	}

	seen := make([]bool, columns)
	for _, idx := range o {
		if idx < 0 || idx >= columns {
			return fmt.Errorf("%w: index %d out of range [0,%d)",
				ErrInvalidPermutation, idx, columns)
		}
		if seen[idx] {
			return fmt.Errorf("%w: index %d appears more than once",
				ErrInvalidPermutation, idx)
		}
		seen[idx] = true
	}
	return nil
}
