package table

import "strings"

// Reorder returns a new Table with columns rearranged so that output column
// i holds input column order[i]. The header, separator, and every data row
// are permuted identically; the receiver is not mutated.
//
// Applying a non-identity order twice does not restore the original, so
// callers reorder exactly once per invocation.
func (t *Table) Reorder(order ColumnOrder) (*Table, error) {
	if err := order.Validate(t.Columns()); err != nil {
		return nil, err
	}

	out := &Table{
		Header:    permute(t.Header, order),
		Separator: permute(t.Separator, order),
	}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, permute(row, order))
	}
	return out, nil
}

func permute(row Row, order ColumnOrder) Row {
	out := make(Row, len(order))
	for i, idx := range order {
		out[i] = row[idx]
	}
	return out
}

// Reverse returns a new Table with its data rows in reverse order. With
// includeHeader the header joins the reversed sequence, so on a table with
// at least one data row it ends up last and the first data row becomes the
// new header. The separator never moves: it is always rendered as the
// second line, directly under whichever row comes first.
//
// The data-rows-only form is its own inverse.
func (t *Table) Reverse(includeHeader bool) *Table {
	out := &Table{Separator: append(Row(nil), t.Separator...)}

	if !includeHeader {
		out.Header = append(Row(nil), t.Header...)
		for i := len(t.Rows) - 1; i >= 0; i-- {
			out.Rows = append(out.Rows, append(Row(nil), t.Rows[i]...))
		}
		return out
	}

	seq := make([]Row, 0, len(t.Rows)+1)
	seq = append(seq, t.Header)
	seq = append(seq, t.Rows...)
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	out.Header = append(Row(nil), seq[0]...)
	for _, row := range seq[1:] {
		out.Rows = append(out.Rows, append(Row(nil), row...))
	}
	return out
}

// Apply runs the whole pipeline over a document: locate the first table,
// parse it, transform it, render it, and splice the rendered lines back in
// place of the original block. Everything outside the block is returned
// byte for byte.
func Apply(content string, aligned bool, transform func(*Table) (*Table, error)) (string, error) {
	lines := splitLines(content)

	start, end, err := Locate(lines)
	if err != nil {
		return "", err
	}

	t, err := Parse(lines[start:end])
	if err != nil {
		return "", err
	}

	out, err := transform(t)
	if err != nil {
		return "", err
	}

	var rendered []string
	if aligned {
		rendered = out.RenderAligned()
	} else {
		rendered = out.Render()
	}

	spliced := make([]string, 0, len(lines)-(end-start)+len(rendered))
	spliced = append(spliced, lines[:start]...)
	spliced = append(spliced, rendered...)
	spliced = append(spliced, lines[end:]...)
	return joinLines(spliced), nil
}

// splitLines splits on "\n" only. strings.Split keeps a trailing empty
// element for content ending in a newline, so the join below reproduces the
// original trailing newline exactly.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
