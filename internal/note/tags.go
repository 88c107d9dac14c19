package note

import "regexp"

var blankLines = regexp.MustCompile(`\n\s*\n`)

// RemoveTag strips a tag from a note. In the frontmatter the tag is matched
// as a list entry with or without a leading '#' and with optional quoting;
// in the body only the '#tag' form is removed, word-bounded and case-
// insensitive. Blank lines left behind in the frontmatter are collapsed.
// Returns the new content and the number of occurrences removed.
func RemoveTag(content, tag string) (string, int) {
	quoted := regexp.QuoteMeta(tag)
	frontRe := regexp.MustCompile(`(?im)^[ \t]*-[ \t]*["']?#?` + quoted + `["']?[ \t]*$`)
	bodyRe := regexp.MustCompile(`(?i)(^|\s)#` + quoted + `\b`)

	front, body, ok := SplitFrontmatter(content)
	if !ok {
		removed := len(bodyRe.FindAllString(content, -1))
		return bodyRe.ReplaceAllString(content, "$1"), removed
	}

	removed := len(frontRe.FindAllString(front, -1))
	newFront := frontRe.ReplaceAllString(front, "")
	if removed > 0 {
		newFront = blankLines.ReplaceAllString(newFront, "\n")
	}

	removed += len(bodyRe.FindAllString(body, -1))
	newBody := bodyRe.ReplaceAllString(body, "$1")

	return JoinFrontmatter(newFront, newBody), removed
}
