// Package cssbrace scans a stylesheet for brace-balance errors and related
// structural problems.
package cssbrace

// Severity of a diagnostic
type Severity string

// Severity levels
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Kind identifies which check produced a diagnostic
type Kind string

// Diagnostic kinds
const (
	KindUnmatchedCloser   Kind = "unmatched-closer"
	KindUnclosedBlock     Kind = "unclosed-block"
	KindBraceBalance      Kind = "brace-balance"
	KindMissingSemicolon  Kind = "missing-semicolon"
	KindUnclosedVar       Kind = "unclosed-var"
	KindMalformedProperty Kind = "malformed-property"
	KindNestedBlock       Kind = "nested-block"
)

// Message templates
const (
	MsgUnmatchedCloser   = "closing brace with no matching opener"
	MsgUnclosedBlock     = "%d unclosed block(s), most recent opened at line %d"
	MsgBraceBalance      = "brace balance is %d: %s"
	MsgMissingSemicolon  = "possible missing semicolon"
	MsgUnclosedVar       = "unclosed parenthesis in var()"
	MsgMalformedProperty = "possibly malformed property"
	MsgNestedBlock       = "possible incorrectly nested block"
)

// Diagnostic is a single finding about the document
type Diagnostic struct {
	Line     int      // 1-based; 0 for document-level findings
	Message  string   // "closing brace with no matching opener"
	Severity Severity // error, warning, info
	Kind     Kind
	Snippet  string      // Truncated line text
	Related  []OpenBlock // Unclosed openers for KindUnclosedBlock
}

// OpenBlock is a currently-open brace on the scan stack
type OpenBlock struct {
	Line    int    // Line of the opening brace
	Snippet string // Truncated line (or selector) text
}

// TraceStep describes one line that changed the balance
type TraceStep struct {
	Line    int
	Opens   int
	Closes  int
	Balance int // Balance after this line
	Snippet string
}

// ScanOptions controls the brace scan
type ScanOptions struct {
	// CommentPrefixes marks whole lines to skip when the trimmed line
	// starts with any of them. Braces inside those lines are not counted.
	CommentPrefixes []string
	SkipBlank       bool // Count blank lines as skipped

	SnippetWidth int // Display columns kept per snippet (0 = full line)
	ShowUnclosed int // Openers listed in the unclosed diagnostic (0 = all)

	// PerLine pushes/pops at most once per line and records the selector
	// text before the first '{' as the snippet.
	PerLine bool

	Trace func(TraceStep) // Called for every line containing a brace
}

// ScanResult is the outcome of a single scan
type ScanResult struct {
	Balance      int         // Opens minus closes
	Unclosed     []OpenBlock // Stack left at end of scan, oldest first
	Excess       int         // Closing braces beyond the opening count
	Diagnostics  []Diagnostic
	Opens        int
	Closes       int
	LinesScanned int
	LinesSkipped int
}

// Balanced reports whether the scan ended clean
func (r *ScanResult) Balanced() bool {
	return r.Balance == 0 && len(r.Unclosed) == 0 && len(r.Diagnostics) == 0
}

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputIssues shows diagnostics in golangci-lint format and a summary
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows the balance summary and statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows diagnostics, summary, and statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data
	OutputJSON OutputFormat = "json"
)
