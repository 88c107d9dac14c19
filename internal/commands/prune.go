package commands

import (
	"fmt"

	"github.com/haslund/notefmt/internal/note"
	"github.com/haslund/notefmt/internal/styles"
)

// Prune unwraps wikilinks whose target note no longer exists next to the
// file, leaving the link text behind as plain text.
func Prune(args []string) {
	var (
		output     string
		dryRun     bool
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
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) != 1 {
		fail("usage: notefmt prune [options] <file.md>")
	}
	path := positional[0]

	dir, err := note.NoteDir(path)
	if err != nil {
		fail("%v", err)
	}

	var pruned []string
	applyRewrite(path, output, dryRun, func(content string) (string, error) {
		out, removed := note.PruneDeadLinks(content, dir)
		pruned = removed
		return out, nil
	})

	for _, target := range pruned {
		fmt.Println(styles.DimStyle.Render("  unlinked: " + target))
	}
	if !dryRun {
		success("Pruned %d dead link(s) in %s", len(pruned), path)
	}
}
