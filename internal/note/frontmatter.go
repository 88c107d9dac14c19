// Package note implements the textual transforms applied to markdown notes:
// frontmatter edits, wikilink handling, tag removal, date normalization,
// link inlining, and per-year table splitting.
package note

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// SplitFrontmatter splits content that opens with a "---" fenced YAML block
// into the raw inner frontmatter text and the body after the closing fence.
// The split is purely textual so JoinFrontmatter reconstructs the original
// bytes exactly, which lets key renames and tag removals preserve whatever
// formatting the note author used.
func SplitFrontmatter(content string) (front, body string, ok bool) {
	if !strings.HasPrefix(content, "---") {
		return "", content, false
	}
	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return "", content, false
	}
	return parts[1], parts[2], true
}

// JoinFrontmatter is the inverse of SplitFrontmatter.
func JoinFrontmatter(front, body string) string {
	return "---" + front + "---" + body
}

// HasFrontmatter reports whether content opens with a complete frontmatter
// block: a first line of exactly "---" and a later closing "---" line.
func HasFrontmatter(content string) bool {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return false
	}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "---" {
			return true
		}
	}
	return false
}

// ParseFrontmatter decodes the frontmatter block into a map and returns the
// remaining body. Content without frontmatter yields a nil map and the
// input unchanged.
func ParseFrontmatter(content string) (map[string]any, string, error) {
	var meta map[string]any
	rest, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return meta, string(rest), nil
}

// RenameKey renames a top-level frontmatter key, editing the raw block so
// the author's formatting survives. When the original block is valid YAML
// the edited block must still parse, otherwise the rename is rejected.
// Returns false when there is no frontmatter or the key is absent.
func RenameKey(content, oldKey, newKey string) (string, bool, error) {
	front, body, ok := SplitFrontmatter(content)
	if !ok {
		return content, false, nil
	}

	keyRe, err := regexp.Compile(`(?m)^(\s*)` + regexp.QuoteMeta(oldKey) + `:`)
	if err != nil {
		return content, false, fmt.Errorf("invalid key %q: %w", oldKey, err)
	}
	if !keyRe.MatchString(front) {
		return content, false, nil
	}

	newFront := keyRe.ReplaceAllString(front, "${1}"+newKey+":")
	if newFront == front {
		return content, false, nil
	}

	var probe map[string]any
	if yaml.Unmarshal([]byte(front), &probe) == nil {
		if err := yaml.Unmarshal([]byte(newFront), &map[string]any{}); err != nil {
			return content, false, fmt.Errorf("rename would break frontmatter YAML: %w", err)
		}
	}

	return JoinFrontmatter(newFront, body), true, nil
}

// EnsureID adds an "id" key with the given value to notes that lack one.
// Notes without any frontmatter get a fresh block holding just the id.
// Returns false when an id is already present.
func EnsureID(content, id string) (string, bool, error) {
	front, body, ok := SplitFrontmatter(content)
	if !ok {
		return "---\nid: " + id + "\n---\n" + content, true, nil
	}

	var meta map[string]any
	if err := yaml.Unmarshal([]byte(front), &meta); err != nil {
		return content, false, fmt.Errorf("frontmatter is not valid YAML: %w", err)
	}
	if _, exists := meta["id"]; exists {
		return content, false, nil
	}

	if !strings.HasSuffix(front, "\n") {
		front += "\n"
	}
	front += "id: " + id + "\n"
	return JoinFrontmatter(front, body), true, nil
}
