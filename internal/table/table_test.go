package table_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haslund/notefmt/internal/table"
)

func mustParse(t *testing.T, lines ...string) *table.Table {
	t.Helper()
	tbl, err := table.Parse(lines)
	require.NoError(t, err)
	return tbl
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		start, end int
		wantErr    error
	}{
		{
			name: "table with surrounding text",
			lines: []string{
				"# Notes",
				"",
				"| Name | Age |",
				"| --- | --- |",
				"| Alice | 30 |",
				"",
				"trailing text",
			},
			start: 2,
			end:   5,
		},
		{
			name: "table at end of file",
			lines: []string{
				"intro",
				"| a | b |",
				"|---|---|",
				"| 1 | 2 |",
			},
			start: 1,
			end:   4,
		},
		{
			name: "first of two tables wins",
			lines: []string{
				"| a |",
				"|---|",
				"| 1 |",
				"",
				"| x | y |",
				"|---|---|",
			},
			start: 0,
			end:   3,
		},
		{
			name:    "no table",
			lines:   []string{"just", "plain", "text | with a pipe"},
			wantErr: table.ErrNoTable,
		},
		{
			name:    "pipe line without separator",
			lines:   []string{"| a | b |", "| 1 | 2 |"},
			wantErr: table.ErrNoTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := table.Locate(tt.lines)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("trims cells and drops boundary cells", func(t *testing.T) {
		tbl := mustParse(t,
			"|  Name |Age  | City |",
			"| --- | :-: | ---: |",
			"| Alice |30| NYC |",
		)
		assert.Equal(t, table.Row{"Name", "Age", "City"}, tbl.Header)
		assert.Equal(t, table.Row{"---", ":-:", "---:"}, tbl.Separator)
		require.Len(t, tbl.Rows, 1)
		assert.Equal(t, table.Row{"Alice", "30", "NYC"}, tbl.Rows[0])
	})

	t.Run("escaped pipe stays in cell", func(t *testing.T) {
		tbl := mustParse(t,
			"| Link | Note |",
			"| --- | --- |",
			`| [[Page\|label]] | ok |`,
		)
		assert.Equal(t, table.Row{`[[Page\|label]]`, "ok"}, tbl.Rows[0])
	})

	t.Run("rejects short row", func(t *testing.T) {
		_, err := table.Parse([]string{
			"| a | b | c |",
			"|---|---|---|",
			"| 1 | 2 | 3 |",
			"| 1 | 2 |",
		})
		require.ErrorIs(t, err, table.ErrMalformedTable)
		assert.Contains(t, err.Error(), "row 2")
	})

	t.Run("rejects separator cell count mismatch", func(t *testing.T) {
		_, err := table.Parse([]string{
			"| a | b |",
			"|---|",
		})
		assert.ErrorIs(t, err, table.ErrMalformedTable)
	})
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    table.ColumnOrder
		wantErr bool
	}{
		{in: "2,0,1", want: table.ColumnOrder{2, 0, 1}},
		{in: "2 0 1", want: table.ColumnOrder{2, 0, 1}},
		{in: "0", want: table.ColumnOrder{0}},
		{in: "", wantErr: true},
		{in: "a,b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := table.ParseOrder(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, table.ErrInvalidPermutation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReorder(t *testing.T) {
	tbl := mustParse(t,
		"| a | b | c |",
		"| :-- | --- | --: |",
		"| 1 | 2 | 3 |",
		"| 4 | 5 | 6 |",
	)

	t.Run("permutes header separator and rows", func(t *testing.T) {
		out, err := tbl.Reorder(table.ColumnOrder{2, 0, 1})
		require.NoError(t, err)
		assert.Equal(t, table.Row{"c", "a", "b"}, out.Header)
		assert.Equal(t, table.Row{"--:", ":--", "---"}, out.Separator)
		assert.Equal(t, table.Row{"3", "1", "2"}, out.Rows[0])
		assert.Equal(t, table.Row{"6", "4", "5"}, out.Rows[1])
	})

	t.Run("does not mutate input", func(t *testing.T) {
		_, err := tbl.Reorder(table.ColumnOrder{2, 1, 0})
		require.NoError(t, err)
		assert.Equal(t, table.Row{"a", "b", "c"}, tbl.Header)
		assert.Equal(t, table.Row{"1", "2", "3"}, tbl.Rows[0])
	})

	t.Run("rejects non-bijections", func(t *testing.T) {
		for _, order := range []table.ColumnOrder{
			{0, 1},          // wrong length
			{0, 1, 1},       // duplicate
			{0, 1, 3},       // out of range
			{-1, 1, 2},      // negative
			{0, 1, 2, 3, 4}, // too long
		} {
			_, err := tbl.Reorder(order)
			assert.ErrorIs(t, err, table.ErrInvalidPermutation, "order %v", order)
		}
	})
}

func TestReverse(t *testing.T) {
	tbl := mustParse(t,
		"| Name | Age |",
		"| --- | --- |",
		"| Alice | 30 |",
		"| Bob | 25 |",
		"| Cara | 41 |",
	)

	t.Run("data rows only", func(t *testing.T) {
		out := tbl.Reverse(false)
		assert.Equal(t, table.Row{"Name", "Age"}, out.Header)
		assert.Equal(t, table.Row{"Cara", "41"}, out.Rows[0])
		assert.Equal(t, table.Row{"Alice", "30"}, out.Rows[2])
	})

	t.Run("self inverse", func(t *testing.T) {
		back := tbl.Reverse(false).Reverse(false)
		assert.Equal(t, tbl, back)
	})

	t.Run("include header moves header last", func(t *testing.T) {
		out := tbl.Reverse(true)
		assert.Equal(t, table.Row{"Cara", "41"}, out.Header)
		require.Len(t, out.Rows, 3)
		assert.Equal(t, table.Row{"Name", "Age"}, out.Rows[2])
		// separator stays put regardless
		assert.Equal(t, table.Row{"---", "---"}, out.Separator)
	})
}

func TestRenderRoundTrip(t *testing.T) {
	tbl := mustParse(t,
		"|Name|Age|City|",
		"|:--|---|--:|",
		"|Alice|30|NYC|",
		"|Bob|25|LA|",
	)

	rendered := tbl.Render()
	assert.Equal(t, []string{
		"| Name | Age | City |",
		"| :-- | --- | --: |",
		"| Alice | 30 | NYC |",
		"| Bob | 25 | LA |",
	}, rendered)

	reparsed, err := table.Parse(rendered)
	require.NoError(t, err)
	assert.Equal(t, rendered, reparsed.Render(), "render is a fixed point after one pass")
	assert.Equal(t, tbl, reparsed)
}

func TestRenderAligned(t *testing.T) {
	tbl := mustParse(t,
		"| Name | N |",
		"| :-- | --: |",
		"| Alice | 1 |",
		"| Bo | 30 |",
	)

	lines := tbl.RenderAligned()
	assert.Equal(t, []string{
		"| Name  | N   |",
		"| :---- | --: |",
		"| Alice | 1   |",
		"| Bo    | 30  |",
	}, lines)

	reparsed, err := table.Parse(lines)
	require.NoError(t, err)
	assert.Equal(t, tbl.Header, reparsed.Header)
	assert.Equal(t, tbl.Rows, reparsed.Rows)
}

func TestApply(t *testing.T) {
	doc := strings.Join([]string{
		"---",
		"title: log",
		"---",
		"",
		"Some intro text.",
		"",
		"| Name | Age | City |",
		"|---|---|---|",
		"| Alice | 30 | NYC |",
		"",
		"Closing remark.",
		"",
	}, "\n")

	t.Run("reorder leaves surrounding text untouched", func(t *testing.T) {
		out, err := table.Apply(doc, false, func(tbl *table.Table) (*table.Table, error) {
			return tbl.Reorder(table.ColumnOrder{2, 0, 1})
		})
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"---",
			"title: log",
			"---",
			"",
			"Some intro text.",
			"",
			"| City | Name | Age |",
			"| --- | --- | --- |",
			"| NYC | Alice | 30 |",
			"",
			"Closing remark.",
			"",
		}, "\n"), out)
	})

	t.Run("transform failure propagates before any output", func(t *testing.T) {
		_, err := table.Apply(doc, false, func(tbl *table.Table) (*table.Table, error) {
			return tbl.Reorder(table.ColumnOrder{0, 1})
		})
		assert.ErrorIs(t, err, table.ErrInvalidPermutation)
	})

	t.Run("no table", func(t *testing.T) {
		_, err := table.Apply("nothing here\n", false, func(tbl *table.Table) (*table.Table, error) {
			return tbl, nil
		})
		assert.ErrorIs(t, err, table.ErrNoTable)
	})
}
