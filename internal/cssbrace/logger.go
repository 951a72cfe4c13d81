package cssbrace

import (
	"fmt"
	"io"
	"sync"
)

// Logger writes progress and diagnostic messages, normally to stderr,
// keeping stdout for the report itself. A nil *Logger discards everything.
type Logger struct {
	w         io.Writer
	verbose   bool
	quiet     bool
	useColors bool
	mu        sync.Mutex
}

// NewLogger creates a logger. Verbose enables Verbose() output; quiet
// silences everything except Error().
func NewLogger(w io.Writer, verbose, quiet, useColors bool) *Logger {
	return &Logger{w: w, verbose: verbose, quiet: quiet, useColors: useColors}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *Logger) Verbose(format string, args ...any) {
	if l == nil || !l.verbose || l.quiet {
		return
	}
	l.write(RenderStyle(StyleGray, "[verbose] ", l.useColors), format, args...)
}

// Info logs informational messages about normal operations.
func (l *Logger) Info(format string, args ...any) {
	if l == nil || l.quiet {
		return
	}
	l.write("", format, args...)
}

// Error logs error messages. Errors are printed even in quiet mode.
func (l *Logger) Error(format string, args ...any) {
	if l == nil {
		return
	}
	l.write(RenderStyle(StyleRed, "error: ", l.useColors), format, args...)
}

func (l *Logger) write(prefix, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, prefix+fmt.Sprintf(format, args...))
}
