package cssbrace

import "strings"

// LinterName is printed after every issue
const LinterName = "bracecheck"

// Issue represents a single diagnostic in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "bracecheck"
	Text        string   `json:"Text"`        // "closing brace with no matching opener"
	Severity    Severity `json:"Severity"`    // "error", "warning", "info"
	Kind        Kind     `json:"Kind"`        // "unmatched-closer"
	SourceLines []string `json:"SourceLines"` // Line of the stylesheet with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`   // 0 for document-level issues
	Column   int    `json:"Column"` // 1-based column of the brace, 0 when unknown
}

// NewIssue converts a diagnostic into an issue located in doc.
// The column points at the offending brace when there is one.
func NewIssue(doc *Document, d Diagnostic) Issue {
	issue := Issue{
		FromLinter: LinterName,
		Text:       d.Message,
		Severity:   d.Severity,
		Kind:       d.Kind,
		Pos: IssuePos{
			Filename: doc.Path,
			Line:     d.Line,
		},
	}

	if d.Line > 0 {
		line := doc.Line(d.Line)
		issue.SourceLines = []string{line}
		issue.Pos.Column = braceColumn(line, d.Kind)
	}

	return issue
}

// NewIssues converts a slice of diagnostics
func NewIssues(doc *Document, diags []Diagnostic) []Issue {
	issues := make([]Issue, 0, len(diags))
	for _, d := range diags {
		issues = append(issues, NewIssue(doc, d))
	}
	return issues
}

// braceColumn finds the 1-based column of the brace relevant to kind
func braceColumn(line string, kind Kind) int {
	var idx int
	switch kind {
	case KindUnmatchedCloser:
		idx = strings.LastIndexByte(line, '}')
	case KindUnclosedBlock:
		idx = strings.LastIndexByte(line, '{')
	default:
		return firstNonSpace(line)
	}
	if idx < 0 {
		return firstNonSpace(line)
	}
	return idx + 1
}

func firstNonSpace(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return i + 1
		}
	}
	return 1
}
