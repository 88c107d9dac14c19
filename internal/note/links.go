package note

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// wikiLink matches [[target]] and [[target|label]] links, including the
// escaped-pipe form [[target\|label]] used inside table cells.
var wikiLink = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// LinkTarget extracts the note name from a wikilink's inner text, dropping
// any label after a (possibly escaped) pipe.
func LinkTarget(inner string) string {
	if i := strings.Index(inner, `\|`); i >= 0 {
		return strings.TrimSpace(inner[:i])
	}
	if i := strings.IndexByte(inner, '|'); i >= 0 {
		return strings.TrimSpace(inner[:i])
	}
	return strings.TrimSpace(inner)
}

// TargetPath resolves a wikilink target to the note file it points at,
// relative to the directory of the note holding the link. Targets without
// an .md suffix get one appended.
func TargetPath(dir, target string) string {
	if strings.HasSuffix(strings.ToLower(target), ".md") {
		return filepath.Join(dir, target)
	}
	return filepath.Join(dir, target+".md")
}

// PruneDeadLinks unwraps every wikilink whose target note does not exist in
// dir, replacing [[inner]] with its inner text. It returns the new content
// and the targets that were pruned.
func PruneDeadLinks(content, dir string) (string, []string) {
	var pruned []string
	out := wikiLink.ReplaceAllStringFunc(content, func(match string) string {
		inner := match[2 : len(match)-2]
		target := LinkTarget(inner)
		if _, err := os.Stat(TargetPath(dir, target)); err == nil {
			return match
		}
		pruned = append(pruned, target)
		return inner
	})
	return out, pruned
}
