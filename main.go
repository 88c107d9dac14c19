package main

import (
	"fmt"
	"os"

	"github.com/haslund/notefmt/internal/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "reorder", "columns":
		commands.Reorder(os.Args[2:])
	case "reverse":
		commands.Reverse(os.Args[2:])
	case "dates":
		commands.Dates(os.Args[2:])
	case "prune", "prune-links":
		commands.Prune(os.Args[2:])
	case "untag":
		commands.Untag(os.Args[2:])
	case "inline":
		commands.Inline(os.Args[2:])
	case "split":
		commands.Split(os.Args[2:])
	case "front":
		commands.Front(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("notefmt v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := `notefmt - Text transforms for markdown note vaults

Usage:
  notefmt <command> [options]

Commands:
  reorder <file> <order>         Reorder table columns, e.g. "2,0,1"
  reverse <file>                 Reverse table rows (--include-header to move the header too)
  dates <file>                   Normalize date strings (-f format, -i input format)
  prune <file>                   Unwrap wikilinks to notes that no longer exist
  untag <folder> <tag>           Remove a tag from frontmatter and bodies
  inline <file>                  Replace wikilinks with the linked note's content
  split <file>                   Split a table into per-year files by its date column
  front check <folder>           Report notes without (or with broken) frontmatter
  front rename <folder> <a> <b>  Rename a frontmatter key
  front ensure-id <folder>       Add a frontmatter id where missing
  version                        Show version information
  help                           Show this help message

Common options:
  -o, --output <file>   Write the result elsewhere instead of in place
  -n, --dry-run         Show a diff (or the would-be changes) without writing
      --pretty          Width-align table cells when rendering

Examples:
  notefmt reorder daily.md "2,0,1"
  notefmt reverse watchlist.md --include-header
  notefmt dates notes.md -f DD.MM.YYYY
  notefmt untag vault/ daily
`
	fmt.Print(usage)
}
