package note

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/haslund/notefmt/internal/table"
)

// UnknownYear keys rows whose date cell cannot be parsed.
const UnknownYear = "unknown"

// YearSplit is the outcome of splitting a note's table by year: the raw
// frontmatter block to copy into every output file, the rendered header and
// separator lines, and the rendered data rows grouped by year.
type YearSplit struct {
	Front     string // includes the --- fences, empty when the note has none
	Header    string
	Separator string
	Rows      map[string][]string
	Years     []string // ascending, UnknownYear last
}

// SplitByYear groups the data rows of the note's first table by the year in
// their date column. The date column is the header cell named "date"
// (case-insensitive); when no header says so, the second column is assumed,
// which is where the tracking tables these tools grew up on keep it. Range
// values like "March 1, 2024 → March 3, 2024" date the row by their first
// date.
func SplitByYear(content string) (*YearSplit, error) {
	front, body, hasFront := SplitFrontmatter(content)

	lines := strings.Split(body, "\n")
	start, end, err := table.Locate(lines)
	if err != nil {
		return nil, err
	}
	t, err := table.Parse(lines[start:end])
	if err != nil {
		return nil, err
	}

	dateCol := dateColumn(t.Header)
	if dateCol < 0 {
		return nil, fmt.Errorf("table has no date column (header: %s)",
			strings.Join(t.Header, ", "))
	}

	split := &YearSplit{
		Rows: make(map[string][]string),
	}
	if hasFront {
		split.Front = JoinFrontmatter(front, "")
	}

	rendered := t.Render()
	split.Header = rendered[0]
	split.Separator = rendered[1]

	for i, row := range t.Rows {
		year := rowYear(row[dateCol])
		split.Rows[year] = append(split.Rows[year], rendered[2+i])
	}

	for year := range split.Rows {
		if year != UnknownYear {
			split.Years = append(split.Years, year)
		}
	}
	sort.Strings(split.Years)
	if _, ok := split.Rows[UnknownYear]; ok {
		split.Years = append(split.Years, UnknownYear)
	}
	return split, nil
}

// File renders one output file's content for the given year key.
func (s *YearSplit) File(year string) string {
	var b strings.Builder
	if s.Front != "" {
		b.WriteString(s.Front)
		b.WriteString("\n\n")
	}
	b.WriteString(s.Header)
	b.WriteString("\n")
	b.WriteString(s.Separator)
	b.WriteString("\n")
	for _, row := range s.Rows[year] {
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func dateColumn(header table.Row) int {
	for i, cell := range header {
		if strings.Contains(strings.ToLower(cell), "date") {
			return i
		}
	}
	if len(header) >= 2 {
		return 1
	}
	return -1
}

func rowYear(cell string) string {
	date := cell
	if i := strings.Index(date, "→"); i >= 0 {
		date = date[:i]
	}
	date = strings.TrimSpace(date)
	if date == "" {
		return UnknownYear
	}

	t, err := time.Parse("January 2, 2006", date)
	if err != nil {
		return UnknownYear
	}
	return strconv.Itoa(t.Year())
}
