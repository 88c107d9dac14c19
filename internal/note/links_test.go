package note

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeNote(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLinkTarget(t *testing.T) {
	tests := []struct {
		inner string
		want  string
	}{
		{"Some Note", "Some Note"},
		{"Some Note|label", "Some Note"},
		{`Some Note\|label`, "Some Note"},
		{" padded ", "padded"},
		{"explicit.md", "explicit.md"},
	}
	for _, tt := range tests {
		if got := LinkTarget(tt.inner); got != tt.want {
			t.Errorf("LinkTarget(%q) = %q, want %q", tt.inner, got, tt.want)
		}
	}
}

func TestPruneDeadLinks(t *testing.T) {
	dir := t.TempDir()
	writeNote(t, dir, "Exists.md", "# Exists\n")

	content := "See [[Exists]] and [[Missing]] and [[Missing|the label]].\n"
	got, pruned := PruneDeadLinks(content, dir)

	want := "See [[Exists]] and Missing and Missing|the label.\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if len(pruned) != 2 {
		t.Errorf("pruned = %v", pruned)
	}
}

func TestInlineLinks(t *testing.T) {
	dir := t.TempDir()
	writeNote(t, dir, "Recipe.md", "---\ntitle: Recipe\n---\nStep one.\nStep two.\n")
	writeNote(t, dir, "Snippet.md", "Intro.\n```go\nfmt.Println(1)\nfmt.Println(2)\n```\nOutro.\n")

	t.Run("inlines body without frontmatter", func(t *testing.T) {
		got, unresolved := InlineLinks("Before [[Recipe]] after.\n", dir)
		if len(unresolved) != 0 {
			t.Fatalf("unresolved = %v", unresolved)
		}
		if !strings.Contains(got, "Step one.<br>Step two.") {
			t.Errorf("body not folded: %q", got)
		}
		if strings.Contains(got, "title:") {
			t.Errorf("frontmatter leaked: %q", got)
		}
	})

	t.Run("code blocks become pre elements", func(t *testing.T) {
		got, _ := InlineLinks("X [[Snippet]] Y\n", dir)
		if !strings.Contains(got, `<pre><code class="language-go">fmt.Println(1)&#10;fmt.Println(2)</code></pre>`) {
			t.Errorf("code block not converted: %q", got)
		}
	})

	t.Run("unresolved link kept", func(t *testing.T) {
		got, unresolved := InlineLinks("A [[Nowhere]] B\n", dir)
		if got != "A [[Nowhere]] B\n" {
			t.Errorf("content changed: %q", got)
		}
		if len(unresolved) != 1 || unresolved[0] != "Nowhere" {
			t.Errorf("unresolved = %v", unresolved)
		}
	})
}

func TestFoldForCell(t *testing.T) {
	t.Run("plain lines", func(t *testing.T) {
		if got := FoldForCell("a\nb\nc"); got != "a<br>b<br>c" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("unterminated fence flushed", func(t *testing.T) {
		got := FoldForCell("a\n```\ncode line")
		if !strings.Contains(got, "<pre><code>code line</code></pre>") {
			t.Errorf("got %q", got)
		}
	})
}
