package note

import (
	"fmt"
	"regexp"
	"time"
)

// DateStyle names an input date format the rewriter can detect.
type DateStyle string

const (
	StyleMonthDayYear DateStyle = "month-day-year" // December 30, 2024
	StyleDotted       DateStyle = "DD.MM.YYYY"     // 30.12.2024
	StyleISO          DateStyle = "YYYY-MM-DD"     // 2024-12-30
	StyleUS           DateStyle = "MM-DD-YYYY"     // 12-30-2024
)

// AllStyles is the default detector set, applied in this order.
var AllStyles = []DateStyle{StyleMonthDayYear, StyleDotted, StyleISO, StyleUS}

// outputLayouts maps the shorthand format names accepted on the command
// line onto Go reference layouts.
var outputLayouts = map[string]string{
	"YYYY-MM-DD": "2006-01-02",
	"DD.MM.YYYY": "02.01.2006",
	"DD.MM":      "02.01",
	"MM-DD":      "01-02",
	"YYYY-MM":    "2006-01",
	"MM.DD":      "01.02",
}

// OutputLayout resolves a shorthand name like "YYYY-MM-DD" to its Go
// layout; anything not in the shorthand table is treated as a Go reference
// layout verbatim.
func OutputLayout(format string) string {
	if layout, ok := outputLayouts[format]; ok {
		return layout
	}
	return format
}

// ParseStyle validates an input style name from the command line.
func ParseStyle(name string) (DateStyle, error) {
	switch DateStyle(name) {
	case StyleMonthDayYear, StyleDotted, StyleISO, StyleUS:
		return DateStyle(name), nil
	}
	if name == "all" {
		return "", nil
	}
	return "", fmt.Errorf("unknown input date format %q (want month-day-year, DD.MM.YYYY, YYYY-MM-DD, MM-DD-YYYY, or all)", name)
}

var (
	monthDayYearRe = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4}\b`)
	dottedDateRe   = regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.\d{4}\b`)
	isoDateRe      = regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`)
	usDateRe       = regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`)
)

var styleInputs = map[DateStyle]struct {
	re     *regexp.Regexp
	layout string
}{
	StyleMonthDayYear: {monthDayYearRe, "January 2, 2006"},
	StyleDotted:       {dottedDateRe, "2.1.2006"},
	StyleISO:          {isoDateRe, "2006-1-2"},
	StyleUS:           {usDateRe, "1-2-2006"},
}

// RewriteDates rewrites every date matching one of the given input styles
// to the output layout. Strings that look like dates but do not survive a
// real calendar parse (31.02.2024, 99-99-2024) are left untouched. A nil
// styles slice enables every detector.
func RewriteDates(content, outputLayout string, styles []DateStyle) string {
	if len(styles) == 0 {
		styles = AllStyles
	}

	for _, style := range styles {
		in, ok := styleInputs[style]
		if !ok {
			continue
		}
		content = in.re.ReplaceAllStringFunc(content, func(match string) string {
			t, err := time.Parse(in.layout, match)
			if err != nil {
				return match
			}
			return t.Format(outputLayout)
		})
	}
	return content
}
