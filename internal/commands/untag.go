package commands

import (
	"fmt"
	"time"

	"github.com/haslund/notefmt/internal/note"
	"github.com/haslund/notefmt/internal/styles"
	"github.com/haslund/notefmt/internal/vault"
)

// Untag removes a tag from every markdown file under a folder: both the
// frontmatter tag-list entry and the #tag form in note bodies.
func Untag(args []string) {
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
	if len(positional) != 2 {
		fail("usage: notefmt untag [options] <folder> <tag>")
	}
	root, tag := positional[0], positional[1]

	cfg := loadConfig()
	lg, cleanup := newLogger(cfg)
	defer cleanup()

	files, err := vault.Walk(root, cfg.ExcludePatterns)
	if err != nil {
		fail("%v", err)
	}

	start := time.Now()
	modified := 0
	for _, path := range files {
		content, err := vault.ReadNote(path)
		if err != nil {
			lg.FileError(path, err)
			warn("%v", err)
			continue
		}

		out, removed := note.RemoveTag(content, tag)
		if removed == 0 {
			lg.FileSkipped(path, "tag not present")
			continue
		}

		if dryRun {
			fmt.Println(styles.DimStyle.Render(fmt.Sprintf("  would remove %d from %s", removed, path)))
			modified++
			continue
		}

		if err := vault.WriteNote(path, out); err != nil {
			lg.FileError(path, err)
			fail("%v", err)
		}
		lg.TagRemoved(path, tag, removed)
		fmt.Printf("  removed %d instance(s) of %q from %s\n", removed, tag, path)
		modified++
	}
	lg.FolderScanned(root, len(files), modified, time.Since(start))

	fmt.Println()
	success("Scanned %d markdown file(s), removed #%s from %d", len(files), tag, modified)
}
