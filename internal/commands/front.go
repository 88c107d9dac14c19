package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haslund/notefmt/internal/note"
	"github.com/haslund/notefmt/internal/styles"
	"github.com/haslund/notefmt/internal/vault"
)

// Front dispatches the frontmatter subcommands: check, rename, ensure-id.
func Front(args []string) {
	if len(args) == 0 {
		fail("usage: notefmt front <check|rename|ensure-id> ...")
	}
	switch args[0] {
	case "check":
		frontCheck(args[1:])
	case "rename":
		frontRename(args[1:])
	case "ensure-id":
		frontEnsureID(args[1:])
	default:
		fail("unknown front subcommand %q (want check, rename, or ensure-id)", args[0])
	}
}

// frontCheck reports notes missing a frontmatter block, and notes whose
// block does not parse as YAML.
func frontCheck(args []string) {
	if len(args) != 1 {
		fail("usage: notefmt front check <folder>")
	}
	root := args[0]

	cfg := loadConfig()
	files, err := vault.Walk(root, cfg.ExcludePatterns)
	if err != nil {
		fail("%v", err)
	}

	var missing, invalid []string
	for _, path := range files {
		content, err := vault.ReadNote(path)
		if err != nil {
			warn("%v", err)
			continue
		}
		if !note.HasFrontmatter(content) {
			missing = append(missing, path)
			continue
		}
		if _, _, err := note.ParseFrontmatter(content); err != nil {
			invalid = append(invalid, path)
		}
	}

	fmt.Printf("Scanned %d markdown file(s).\n\n", len(files))
	fmt.Printf("With frontmatter:    %d\n", len(files)-len(missing))
	fmt.Printf("Missing frontmatter: %d\n", len(missing))
	for _, path := range missing {
		fmt.Println(styles.DimStyle.Render("  - " + path))
	}
	if len(invalid) > 0 {
		fmt.Println(styles.WarningStyle.Render(fmt.Sprintf("Invalid YAML:        %d", len(invalid))))
		for _, path := range invalid {
			fmt.Println(styles.DimStyle.Render("  - " + path))
		}
	}
}

// frontRename renames a frontmatter key across a folder, preserving each
// note's YAML formatting.
func frontRename(args []string) {
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
	if len(positional) != 3 {
		fail("usage: notefmt front rename [options] <folder> <old-key> <new-key>")
	}
	root, oldKey, newKey := positional[0], positional[1], positional[2]

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

		out, changed, err := note.RenameKey(content, oldKey, newKey)
		if err != nil {
			lg.FileError(path, err)
			warn("%s: %v", path, err)
			continue
		}
		if !changed {
			continue
		}

		if dryRun {
			fmt.Println(styles.DimStyle.Render("  would rename in " + path))
			modified++
			continue
		}
		if err := vault.WriteNote(path, out); err != nil {
			fail("%v", err)
		}
		lg.FileRewritten(path, "front rename")
		fmt.Println("  - " + path)
		modified++
	}
	lg.FolderScanned(root, len(files), modified, time.Since(start))

	success("Renamed %q to %q in %d file(s)", oldKey, newKey, modified)
}

// frontEnsureID gives every note under a folder a frontmatter id, creating
// the block when a note has none.
func frontEnsureID(args []string) {
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
		fail("usage: notefmt front ensure-id [options] <folder>")
	}
	root := positional[0]

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

		out, changed, err := note.EnsureID(content, uuid.NewString())
		if err != nil {
			lg.FileError(path, err)
			warn("%s: %v", path, err)
			continue
		}
		if !changed {
			continue
		}

		if dryRun {
			fmt.Println(styles.DimStyle.Render("  would add id to " + path))
			modified++
			continue
		}
		if err := vault.WriteNote(path, out); err != nil {
			fail("%v", err)
		}
		lg.FileRewritten(path, "front ensure-id")
		modified++
	}
	lg.FolderScanned(root, len(files), modified, time.Since(start))

	success("Added ids to %d of %d file(s)", modified, len(files))
}
