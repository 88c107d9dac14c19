package commands

import (
	"github.com/haslund/notefmt/internal/table"
)

// Reverse flips the order of a note table's data rows. With
// --include-header the header joins the reversal; the separator line stays
// put either way so the output remains a valid table.
func Reverse(args []string) {
	var (
		output        string
		dryRun        bool
		pretty        bool
		includeHeader bool
		positional    []string
	)
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				fail("%s requires a file path", args[i])
			}
			i++
			output = args[i]
		case "-n", "--dry-run":
			dryRun = true
		case "--pretty":
			pretty = true
		case "--include-header":
			includeHeader = true
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) != 1 {
		fail("usage: notefmt reverse [options] <file.md>")
	}
	path := positional[0]

	cfg := loadConfig()
	pretty = pretty || cfg.PrettyTables

	applyRewrite(path, output, dryRun, func(content string) (string, error) {
		return table.Apply(content, pretty, func(t *table.Table) (*table.Table, error) {
			return t.Reverse(includeHeader), nil
		})
	})

	if !dryRun {
		dest := path
		if output != "" {
			dest = output
		}
		if includeHeader {
			success("Reversed all rows including header in %s", dest)
		} else {
			success("Reversed table rows in %s", dest)
		}
	}
}
