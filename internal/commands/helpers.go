package commands

import (
	"fmt"
	"os"

	"github.com/haslund/notefmt/internal/config"
	"github.com/haslund/notefmt/internal/diff"
	"github.com/haslund/notefmt/internal/logger"
	"github.com/haslund/notefmt/internal/styles"
	"github.com/haslund/notefmt/internal/vault"
)

// fail prints a styled error and exits non-zero. Transforms never retry or
// silently recover; a one-shot tool surfaces problems immediately.
func fail(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
	os.Exit(1)
}

func success(format string, args ...any) {
	fmt.Println(styles.SuccessStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

func warn(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styles.WarningStyle.Render("! "+fmt.Sprintf(format, args...)))
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fail("config: %v", err)
	}
	return cfg
}

// newLogger returns the per-file event logger used by folder commands.
// Events go to the configured log file; without one they are discarded.
func newLogger(cfg *config.Config) (*logger.Logger, func()) {
	if cfg.LogFile == "" {
		return logger.Discard(), func() {}
	}
	lg, cleanup, err := logger.NewFileLogger(cfg.LogFile)
	if err != nil {
		fail("failed to open log file: %v", err)
	}
	return lg, cleanup
}

// applyRewrite runs a whole-file transform with write-after-success
// semantics: the destination is written only once the transform has
// succeeded in memory, so a failed transform leaves the file untouched.
// With dryRun the unified diff is printed and nothing is written.
func applyRewrite(path, output string, dryRun bool, transform func(string) (string, error)) {
	content, err := vault.ReadNote(path)
	if err != nil {
		fail("%v", err)
	}

	out, err := transform(content)
	if err != nil {
		fail("%s: %v", path, err)
	}

	if dryRun {
		if d := diff.Unified(path, content, out); d != "" {
			fmt.Print(d)
		} else {
			fmt.Println(styles.DimStyle.Render("No changes."))
		}
		return
	}

	dest := path
	if output != "" {
		dest = output
	}
	if err := vault.WriteNote(dest, out); err != nil {
		fail("%v", err)
	}
}
