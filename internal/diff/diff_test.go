package diff

import (
	"strings"
	"testing"
)

func TestUnified(t *testing.T) {
	t.Run("no change", func(t *testing.T) {
		if got := Unified("a.md", "same\n", "same\n"); got != "" {
			t.Errorf("expected empty diff, got %q", got)
		}
	})

	t.Run("shows changed line", func(t *testing.T) {
		got := Unified("a.md", "one\ntwo\n", "one\n2\n")
		if !strings.Contains(got, "-two") || !strings.Contains(got, "+2") {
			t.Errorf("diff missing edits:\n%s", got)
		}
		if !strings.Contains(got, "a.md") {
			t.Errorf("diff missing file name:\n%s", got)
		}
	})
}
