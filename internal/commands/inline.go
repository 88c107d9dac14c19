package commands

import (
	"github.com/haslund/notefmt/internal/note"
)

// Inline replaces each wikilink in a note with the linked note's content,
// folded so it stays inside a single table cell.
func Inline(args []string) {
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
		fail("usage: notefmt inline [options] <file.md>")
	}
	path := positional[0]

	dir, err := note.NoteDir(path)
	if err != nil {
		fail("%v", err)
	}

	var unresolved []string
	applyRewrite(path, output, dryRun, func(content string) (string, error) {
		out, missing := note.InlineLinks(content, dir)
		unresolved = missing
		return out, nil
	})

	for _, target := range unresolved {
		warn("link target not found, kept as-is: %s", target)
	}
	if !dryRun {
		success("Inlined linked notes in %s", path)
	}
}
