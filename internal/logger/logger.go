// Package logger provides verbose logging for fzz.
// When verbose mode is enabled via the --verbose flag, debug messages
// describing ingestion, ranking jobs and controller transitions are
// written to the log output (stderr, or --log-file while the TUI owns
// the terminal).
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	session string
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetSession tags every subsequent line with a session identifier.
// An empty id removes the tag.
func SetSession(id string) {
	mu.Lock()
	defer mu.Unlock()
	session = id
}

// OpenFile redirects log output to the file at path, appending to it.
// The caller closes the returned file when the session ends.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	SetOutput(f)
	return f, nil
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf("DEBUG", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf("INFO", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf("WARN", format, args...)
}

func logf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	if session != "" {
		fmt.Fprintf(output, "["+level+"] ["+session+"] "+format+"\n", args...)
		return
	}
	fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
}
