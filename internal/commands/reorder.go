package commands

import (
	"github.com/haslund/notefmt/internal/table"
)

// Reorder rearranges a note table's columns by the permutation given on
// the command line, e.g. "2,0,1" to move the third column first.
func Reorder(args []string) {
	var (
		output     string
		dryRun     bool
		pretty     bool
		positional []string
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
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) != 2 {
		fail("usage: notefmt reorder [options] <file.md> <order>")
	}
	path, orderArg := positional[0], positional[1]

	order, err := table.ParseOrder(orderArg)
	if err != nil {
		fail("%v", err)
	}

	cfg := loadConfig()
	pretty = pretty || cfg.PrettyTables

	applyRewrite(path, output, dryRun, func(content string) (string, error) {
		return table.Apply(content, pretty, func(t *table.Table) (*table.Table, error) {
			return t.Reorder(order)
		})
	})

	if !dryRun {
		dest := path
		if output != "" {
			dest = output
		}
		success("Reordered columns (%s) in %s", orderArg, dest)
	}
}
