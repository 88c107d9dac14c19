package note

import "testing"

func TestRewriteDates(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		format string
		styles []DateStyle
		want   string
	}{
		{
			name:   "month day year to iso",
			in:     "Logged on December 30, 2024 at noon.",
			format: "YYYY-MM-DD",
			want:   "Logged on 2024-12-30 at noon.",
		},
		{
			name:   "dotted to iso",
			in:     "Due 30.12.2024.",
			format: "YYYY-MM-DD",
			want:   "Due 2024-12-30.",
		},
		{
			name:   "iso to dotted",
			in:     "Start 2024-01-05, end 2024-02-07.",
			format: "DD.MM.YYYY",
			want:   "Start 05.01.2024, end 07.02.2024.",
		},
		{
			name:   "us dashes",
			in:     "Shipped 12-30-2024.",
			format: "YYYY-MM-DD",
			styles: []DateStyle{StyleUS},
			want:   "Shipped 2024-12-30.",
		},
		{
			name:   "short output without year",
			in:     "Party on July 4, 2025!",
			format: "DD.MM",
			want:   "Party on 04.07!",
		},
		{
			name:   "impossible date kept",
			in:     "Weird 99.99.2024 value.",
			format: "YYYY-MM-DD",
			want:   "Weird 99.99.2024 value.",
		},
		{
			name:   "february 31st kept",
			in:     "Bad 31.02.2024 here.",
			format: "YYYY-MM-DD",
			want:   "Bad 31.02.2024 here.",
		},
		{
			name:   "only selected detectors run",
			in:     "Keep 30.12.2024, fix December 1, 2024.",
			format: "YYYY-MM-DD",
			styles: []DateStyle{StyleMonthDayYear},
			want:   "Keep 30.12.2024, fix 2024-12-01.",
		},
		{
			name:   "idempotent when already normalized",
			in:     "Done 2024-12-30.",
			format: "YYYY-MM-DD",
			want:   "Done 2024-12-30.",
		},
		{
			name:   "go layout passthrough",
			in:     "On December 30, 2024.",
			format: "Jan _2 2006",
			want:   "On Dec 30 2024.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteDates(tt.in, OutputLayout(tt.format), tt.styles)
			if got != tt.want {
				t.Errorf("RewriteDates(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	if _, err := ParseStyle("DD.MM.YYYY"); err != nil {
		t.Errorf("valid style rejected: %v", err)
	}
	if _, err := ParseStyle("all"); err != nil {
		t.Errorf("'all' rejected: %v", err)
	}
	if _, err := ParseStyle("nope"); err == nil {
		t.Error("expected error for unknown style")
	}
}
