package commands

import (
	"github.com/haslund/notefmt/internal/note"
)

// Dates normalizes the date strings in a note to one output format.
func Dates(args []string) {
	var (
		output     string
		dryRun     bool
		format     string
		inputs     []note.DateStyle
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
		case "-f", "--format":
			if i+1 >= len(args) {
				fail("%s requires a format string", args[i])
			}
			i++
			format = args[i]
		case "-i", "--input":
			if i+1 >= len(args) {
				fail("%s requires an input format name", args[i])
			}
			i++
			style, err := note.ParseStyle(args[i])
			if err != nil {
				fail("%v", err)
			}
			if style == "" { // "all"
				inputs = nil
			} else {
				inputs = append(inputs, style)
			}
		case "-n", "--dry-run":
			dryRun = true
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) != 1 {
		fail("usage: notefmt dates [options] <file.md>")
	}
	path := positional[0]

	if format == "" {
		format = loadConfig().DateFormat
	}
	layout := note.OutputLayout(format)

	applyRewrite(path, output, dryRun, func(content string) (string, error) {
		return note.RewriteDates(content, layout, inputs), nil
	})

	if !dryRun {
		dest := path
		if output != "" {
			dest = output
		}
		success("Dates normalized to %s in %s", format, dest)
	}
}
