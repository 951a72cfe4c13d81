package cssbrace

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Bare selector line: ".btn", "#id {", "@media"
	selectorLinePattern = regexp.MustCompile(`^\s*[.#@\w-]+\s*{?\s*$`)
	// Value opened with var( and never closed on the same line
	unclosedVarPattern = regexp.MustCompile(`:\s*var\([^)]*$`)
	// Two bare value words after a colon with no terminator
	malformedPropertyPattern = regexp.MustCompile(`:\s*[^;{}\s]+\s+[^;{}\s]+\s*$`)
	// A block opened again before the previous one closed
	nestedBlockPattern = regexp.MustCompile(`\w+\s*\{[^}]*\{`)
)

// SyntaxOptions controls the heuristic syntax checks
type SyntaxOptions struct {
	CommentPrefixes []string
	SnippetWidth    int
	MaxWarnings     int // Warnings kept in the result (0 = all)
}

// DefaultSyntaxOptions returns the limits used by the audit command
func DefaultSyntaxOptions() SyntaxOptions {
	return SyntaxOptions{
		CommentPrefixes: DefaultCommentPrefixes,
		SnippetWidth:    50,
		MaxWarnings:     10,
	}
}

// SyntaxResult holds the findings of CheckSyntax
type SyntaxResult struct {
	Errors          []Diagnostic
	Warnings        []Diagnostic
	WarningsDropped int // Warnings beyond MaxWarnings
	Balance         int
}

// Passed reports whether no errors were found. Warnings do not fail.
func (r *SyntaxResult) Passed() bool {
	return len(r.Errors) == 0
}

// Diagnostics returns errors followed by the kept warnings
func (r *SyntaxResult) Diagnostics() []Diagnostic {
	all := make([]Diagnostic, 0, len(r.Errors)+len(r.Warnings))
	all = append(all, r.Errors...)
	return append(all, r.Warnings...)
}

// CheckSyntax runs line-level heuristics over the document.
// These are hints for a hand-edited stylesheet, not a CSS grammar check.
func CheckSyntax(doc *Document, opts SyntaxOptions) *SyntaxResult {
	result := &SyntaxResult{}

	// Blank lines count as skipped here, unlike the plain brace scan.
	scan := Scan(doc.Lines, ScanOptions{
		CommentPrefixes: opts.CommentPrefixes,
		SkipBlank:       true,
	}, nil)
	result.Balance = scan.Balance

	for i, line := range doc.Lines {
		lineNum := i + 1
		stripped := strings.TrimSpace(line)
		if stripped == "" || isCommentLine(stripped, opts.CommentPrefixes) {
			continue
		}
		snippet := Snippet(line, opts.SnippetWidth)

		if strings.Contains(line, ":") && !hasAnySuffix(stripped, ";", "{", "}") &&
			!selectorLinePattern.MatchString(stripped) &&
			!strings.HasSuffix(stripped, "!important") && !strings.Contains(stripped, "{") {
			result.Warnings = append(result.Warnings, Diagnostic{
				Line: lineNum, Message: MsgMissingSemicolon, Severity: SeverityWarning,
				Kind: KindMissingSemicolon, Snippet: snippet,
			})
		}

		if unclosedVarPattern.MatchString(line) {
			result.Errors = append(result.Errors, Diagnostic{
				Line: lineNum, Message: MsgUnclosedVar, Severity: SeverityError,
				Kind: KindUnclosedVar, Snippet: snippet,
			})
		}

		if malformedPropertyPattern.MatchString(stripped) &&
			!strings.Contains(stripped, "!important") && !strings.Contains(stripped, "{") {
			result.Warnings = append(result.Warnings, Diagnostic{
				Line: lineNum, Message: MsgMalformedProperty, Severity: SeverityWarning,
				Kind: KindMalformedProperty, Snippet: snippet,
			})
		}
	}

	if result.Balance != 0 {
		detail := "unclosed brace(s)"
		if result.Balance < 0 {
			detail = "extra closing brace(s)"
		}
		result.Errors = append(result.Errors, Diagnostic{
			Message:  fmt.Sprintf(MsgBraceBalance, result.Balance, detail),
			Severity: SeverityError,
			Kind:     KindBraceBalance,
		})
	}

	if nestedBlockPattern.MatchString(doc.Content()) {
		result.Warnings = append(result.Warnings, Diagnostic{
			Message:  MsgNestedBlock,
			Severity: SeverityWarning,
			Kind:     KindNestedBlock,
		})
	}

	if opts.MaxWarnings > 0 && len(result.Warnings) > opts.MaxWarnings {
		result.WarningsDropped = len(result.Warnings) - opts.MaxWarnings
		result.Warnings = result.Warnings[:opts.MaxWarnings]
	}

	return result
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
