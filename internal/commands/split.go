package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/haslund/notefmt/internal/note"
	"github.com/haslund/notefmt/internal/styles"
	"github.com/haslund/notefmt/internal/vault"
)

// Split breaks a note's table into one sibling file per year, keyed on the
// table's date column. Every output file carries the source frontmatter,
// header, and separator.
func Split(args []string) {
	var (
		dryRun     bool
		positional []string
	)
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-n", "--dry-run":
			dryRun = true
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) != 1 {
		fail("usage: notefmt split [options] <file.md>")
	}
	path := positional[0]

	cfg := loadConfig()
	lg, cleanup := newLogger(cfg)
	defer cleanup()

	content, err := vault.ReadNote(path)
	if err != nil {
		fail("%v", err)
	}

	split, err := note.SplitByYear(content)
	if err != nil {
		fail("%s: %v", path, err)
	}

	dir := filepath.Dir(path)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	for _, year := range split.Years {
		name := stem + "_" + year + ".md"
		if year == note.UnknownYear {
			name = stem + "_unknown_dates.md"
		}
		dest := filepath.Join(dir, name)
		rows := len(split.Rows[year])

		if dryRun {
			fmt.Println(styles.DimStyle.Render(fmt.Sprintf("  would create %s (%d rows)", dest, rows)))
			continue
		}

		if err := vault.WriteNote(dest, split.File(year)); err != nil {
			fail("%v", err)
		}
		lg.SplitWritten(dest, rows)
		fmt.Printf("  created %s (%d rows)\n", dest, rows)
	}

	if !dryRun {
		years := len(split.Years)
		if _, ok := split.Rows[note.UnknownYear]; ok {
			years--
		}
		success("Split %s across %d year(s)", path, years)
	}
}
