package note

import (
	"path/filepath"
	"strings"

	"github.com/haslund/notefmt/internal/vault"
)

// InlineLinks replaces each wikilink with the body of the note it points
// at, folded onto one logical line so the result stays inside a single
// table cell. The linked note's frontmatter is stripped before inlining.
// Links whose target cannot be read are left in place and reported back.
func InlineLinks(content, dir string) (string, []string) {
	var unresolved []string
	out := wikiLink.ReplaceAllStringFunc(content, func(match string) string {
		target := LinkTarget(match[2 : len(match)-2])
		path := TargetPath(dir, target)

		raw, err := vault.ReadNote(path)
		if err != nil {
			unresolved = append(unresolved, target)
			return match
		}

		_, body, err := ParseFrontmatter(raw)
		if err != nil {
			body = raw
		}
		return FoldForCell(strings.TrimSpace(body))
	})
	return out, unresolved
}

// FoldForCell rewrites multi-line markdown so it survives inside one table
// cell: fenced code blocks become <pre><code> with &#10; line joins, and
// every remaining newline becomes <br>.
func FoldForCell(content string) string {
	var folded []string
	var code []string
	lang := ""
	inFence := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "```"):
			if !inFence {
				inFence = true
				lang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
				code = code[:0]
			} else {
				inFence = false
				folded = append(folded, codeElement(lang, code))
			}
		case inFence:
			code = append(code, line)
		default:
			folded = append(folded, line)
		}
	}
	// Unterminated fence: keep the collected lines rather than dropping them.
	if inFence {
		folded = append(folded, codeElement(lang, code))
	}

	return strings.Join(folded, "<br>")
}

func codeElement(lang string, lines []string) string {
	// &#10; keeps the code's line breaks without breaking the table row.
	body := strings.Join(lines, "&#10;")
	if lang != "" {
		return `<pre><code class="language-` + lang + `">` + body + "</code></pre>"
	}
	return "<pre><code>" + body + "</code></pre>"
}

// NoteDir returns the directory wikilinks in the given note resolve
// against.
func NoteDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Dir(abs), nil
}
