// Package logging writes the per-run debug log.
package logging

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// HeaderLine is written at the top of every fresh log file.
const HeaderLine = "--- Help Generator Log ---"

// Options configures a DebugLog.
type Options struct {
	Level log.Level
	// Mirror also receives every entry, typically os.Stderr in verbose mode.
	Mirror io.Writer
	// ReportTimestamp prefixes entries with the time.
	ReportTimestamp bool
}

// DefaultOptions returns the options used by the generate command.
func DefaultOptions() Options {
	return Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	}
}

// DebugLog is the run's logging context. It owns the log file until Close.
type DebugLog struct {
	*log.Logger
	Path string
	file *os.File
}

// Open truncates path, writes the header line and returns a logger writing to
// it. The caller must Close the returned log.
func Open(path string, opts Options) (*DebugLog, error) {
	if path == "" {
		return nil, fmt.Errorf("log path is empty")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}
	if _, err := fmt.Fprintln(file, HeaderLine); err != nil {
		file.Close()
		return nil, fmt.Errorf("write log header: %w", err)
	}

	var w io.Writer = file
	if opts.Mirror != nil {
		w = io.MultiWriter(file, opts.Mirror)
	}

	return &DebugLog{
		Logger: newLogger(w, opts),
		Path:   path,
		file:   file,
	}, nil
}

// OpenOrDiscard opens the log at path. If that fails, the error is reported on
// warn and a log that only writes to opts.Mirror is returned, so a broken log
// location never stops a run.
func OpenOrDiscard(path string, opts Options, warn io.Writer) *DebugLog {
	l, err := Open(path, opts)
	if err == nil {
		return l
	}
	if warn != nil {
		fmt.Fprintf(warn, "Warning: debug log disabled: %v\n", err)
	}
	return Discard(opts)
}

// Discard returns a log with no backing file.
func Discard(opts Options) *DebugLog {
	w := io.Discard
	if opts.Mirror != nil {
		w = opts.Mirror
	}
	return &DebugLog{Logger: newLogger(w, opts)}
}

func newLogger(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		TimeFormat:      "2006-01-02 15:04:05",
	})
}

// Close flushes and closes the log file. It is safe to call more than once.
func (d *DebugLog) Close() error {
	if d == nil || d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// ParseLevel maps a level name to a log level, defaulting to debug.
func ParseLevel(level string) (log.Level, error) {
	if strings.TrimSpace(level) == "" {
		return log.DebugLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.DebugLevel, fmt.Errorf("invalid log level %q", level)
	}
	return lvl, nil
}

// Tail copies the last n lines of the log at path to w. n <= 0 copies
// everything.
func Tail(w io.Writer, path string, n int) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if n <= 0 {
		_, err = io.Copy(w, file)
		return err
	}

	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if len(ring) == n {
			ring = ring[1:]
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range ring {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
