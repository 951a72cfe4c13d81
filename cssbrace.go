// Package cssbrace finds brace-balance errors in a CSS stylesheet.
//
// A stylesheet is read once and walked line by line. Every '{' is pushed
// with its line number, every '}' pops the most recent opener, and whatever
// is left over is reported: closing braces with no opener at their own line,
// unclosed blocks at the line of the most recent opener.
//
// # Checking
//
//	result, err := cssbrace.Check(cssbrace.Config{
//		Path:         "apps/storybook/.storybook/custom-styles.css",
//		ShowUnclosed: 5,
//	}, logger)
//	if result.Failed() { ... }
//
// Lines whose trimmed text starts with a comment marker ("/*" or "*") are
// skipped whole. Braces inside a comment that shares a line with code are
// still counted; Config.Lexical adds a token-aware cross-check for that case.
//
// # Auditing
//
// Audit runs the wider set of checks on the same file: heuristic syntax
// warnings, unclosed selector blocks, import wiring from an entry file, and
// structural statistics.
//
// # CLI Tool
//
//	go install github.com/yacobolo/cssbrace/cmd/cssbrace@latest
package cssbrace

// Public API:
// - Check(config Config, log *Logger) (*Result, error)
// - Audit(config AuditConfig, log *Logger) (*AuditResult, error)
// - DetermineOutputFormat(requested string, quiet bool) OutputFormat
// - WriteOutput(w io.Writer, result *Result, format OutputFormat, opts ReporterOptions) error
