package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// FileRewritten logs a successful in-place rewrite
func (l *Logger) FileRewritten(path, command string) {
	l.Info("file rewritten",
		"file", path,
		"command", command)
}

// TableTransformed logs a table transform
func (l *Logger) TableTransformed(path string, columns, rows int) {
	l.Info("table transformed",
		"file", path,
		"columns", columns,
		"rows", rows)
}

// TagRemoved logs tag occurrences removed from a file
func (l *Logger) TagRemoved(path, tag string, count int) {
	l.Info("tag removed",
		"file", path,
		"tag", tag,
		"occurrences", count)
}

// LinkPruned logs a dead wikilink unwrapped in a file
func (l *Logger) LinkPruned(path, target string) {
	l.Info("dead link pruned",
		"file", path,
		"target", target)
}

// LinkUnresolved logs a wikilink left in place because its target is missing
func (l *Logger) LinkUnresolved(path, target string) {
	l.Warn("link target missing",
		"file", path,
		"target", target)
}

// SplitWritten logs one per-year output file
func (l *Logger) SplitWritten(path string, rows int) {
	l.Info("split file written",
		"file", path,
		"rows", rows)
}

// FileSkipped logs when a file is skipped
func (l *Logger) FileSkipped(path, reason string) {
	l.Debug("file skipped",
		"file", path,
		"reason", reason)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(path string, err error) {
	l.Error("file error",
		"file", path,
		"error", err)
}

// FolderScanned logs the summary of a folder command
func (l *Logger) FolderScanned(root string, scanned, modified int, duration time.Duration) {
	l.Info("folder processed",
		"root", root,
		"files_scanned", scanned,
		"files_modified", modified,
		"duration", duration.Round(time.Millisecond))
}
