package cssbrace

import (
	"fmt"
	"strings"
)

// DefaultCommentPrefixes are the line starts treated as comment lines
var DefaultCommentPrefixes = []string{"/*", "*"}

// DefaultScanOptions returns the options used by the check command
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		CommentPrefixes: DefaultCommentPrefixes,
		SnippetWidth:    50,
		ShowUnclosed:    5,
	}
}

// Scan walks lines in order and pairs every '{' with a later '}'.
//
// Lines whose trimmed content starts with one of opts.CommentPrefixes are
// skipped whole; braces elsewhere are counted without regard to comments or
// strings. Every closer without an opener is reported on its own line and
// still lowers the balance. Openers left on the stack are reported once at
// the end. emit, when non-nil, receives each diagnostic as it is produced;
// the same diagnostics are collected in the result.
func Scan(lines []string, opts ScanOptions, emit func(Diagnostic)) *ScanResult {
	result := &ScanResult{}
	var stack []OpenBlock

	report := func(d Diagnostic) {
		result.Diagnostics = append(result.Diagnostics, d)
		if emit != nil {
			emit(d)
		}
	}

	for i, line := range lines {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		if isCommentLine(trimmed, opts.CommentPrefixes) || (opts.SkipBlank && trimmed == "") {
			result.LinesSkipped++
			continue
		}
		result.LinesScanned++

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")
		if opens == 0 && closes == 0 {
			continue
		}

		snippet := Snippet(line, opts.SnippetWidth)
		if opts.PerLine {
			closes = min(closes, 1)
			if opens > 0 {
				snippet = Snippet(selectorText(line), opts.SnippetWidth)
				opens = 0
				if snippet != "" {
					opens = 1
				}
			}
		}

		// Openers before closers, as a line reads `a { b }`.
		for range opens {
			stack = append(stack, OpenBlock{Line: lineNum, Snippet: snippet})
		}
		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			report(Diagnostic{
				Line:     lineNum,
				Message:  MsgUnmatchedCloser,
				Severity: SeverityError,
				Kind:     KindUnmatchedCloser,
				Snippet:  snippet,
			})
		}

		result.Opens += opens
		result.Closes += closes
		result.Balance += opens - closes

		if opts.Trace != nil {
			opts.Trace(TraceStep{
				Line:    lineNum,
				Opens:   opens,
				Closes:  closes,
				Balance: result.Balance,
				Snippet: snippet,
			})
		}
	}

	result.Unclosed = stack
	if result.Balance < 0 {
		result.Excess = -result.Balance
	}

	if len(stack) > 0 {
		report(unclosedDiagnostic(stack, opts.ShowUnclosed))
	}

	return result
}

// ScanDocument runs Scan over a document's lines without a callback
func ScanDocument(doc *Document, opts ScanOptions) *ScanResult {
	return Scan(doc.Lines, opts, nil)
}

// unclosedDiagnostic reports the stack at the line of its most recent opener
func unclosedDiagnostic(stack []OpenBlock, show int) Diagnostic {
	last := stack[len(stack)-1]

	related := stack
	if show > 0 && len(related) > show {
		related = related[len(related)-show:]
	}

	return Diagnostic{
		Line:     last.Line,
		Message:  fmt.Sprintf(MsgUnclosedBlock, len(stack), last.Line),
		Severity: SeverityError,
		Kind:     KindUnclosedBlock,
		Snippet:  last.Snippet,
		Related:  append([]OpenBlock(nil), related...),
	}
}

// isCommentLine checks whether a trimmed line starts with a comment marker
func isCommentLine(trimmed string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// selectorText returns the text before the first '{'
func selectorText(line string) string {
	before, _, _ := strings.Cut(line, "{")
	return strings.TrimSpace(before)
}
