package cssbrace

import (
	"fmt"

	"github.com/yacobolo/cssbrace/internal/cssbrace"
)

// Re-exported so callers of the public API do not import internal packages.
type (
	Logger          = cssbrace.Logger
	Issue           = cssbrace.Issue
	OutputFormat    = cssbrace.OutputFormat
	ReporterOptions = cssbrace.ReporterOptions
)

// Output formats
const (
	OutputIssues  = cssbrace.OutputIssues
	OutputSummary = cssbrace.OutputSummary
	OutputFull    = cssbrace.OutputFull
	OutputJSON    = cssbrace.OutputJSON
)

// Config holds check configuration
type Config struct {
	Path       string   // Stylesheet to check; searched for when empty
	Root       string   // Directory candidates are relative to
	Candidates []string // Search list used when Path is empty

	CommentPrefixes []string // Whole-line comment markers (default "/*", "*")
	SnippetWidth    int      // Display columns kept per snippet
	ShowUnclosed    int      // Unclosed openers listed (0 = all)

	Lexical bool // Also run the token-aware scan and flag disagreement
	Syntax  bool // Include heuristic syntax warnings
	Strict  bool // Fail on warnings too

	MaxIssues     int // 0 = unlimited
	MaxSameIssues int // 0 = unlimited
}

// Result contains the outcome of a check
type Result struct {
	Path      string
	Document  *cssbrace.Document
	Scan      *cssbrace.ScanResult
	Lexical   *cssbrace.ScanResult // nil unless Config.Lexical
	Syntax    *cssbrace.SyntaxResult
	Structure *cssbrace.Structure

	Issues         []Issue
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits

	strict bool
}

// Failed reports whether the check should exit non-zero: the balance is
// not zero, a diagnostic was an error, or (strict) any issue was found.
func (r *Result) Failed() bool {
	if r.Scan.Balance != 0 || r.ErrorCount > 0 {
		return true
	}
	return r.strict && len(r.Issues) > 0
}

// Summary returns the data for the closing lines of the report
func (r *Result) Summary() cssbrace.Summary {
	return cssbrace.Summary{
		Balance:   r.Scan.Balance,
		Excess:    r.Scan.Excess,
		Unclosed:  r.Scan.Unclosed,
		Issues:    r.Issues,
		Truncated: r.TruncatedCount,
	}
}

// Check scans a stylesheet for brace-balance errors
func Check(config Config, log *Logger) (*Result, error) {
	// Step 1: Resolve and load the stylesheet
	path, err := ResolveStylesheet(config.Path, config.Root, config.Candidates, log)
	if err != nil {
		return nil, err
	}

	doc, err := cssbrace.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	log.Verbose("loaded %s (%d lines, %d bytes)", path, len(doc.Lines), doc.Size)

	opts := scanOptions(config)
	result := &Result{Path: path, Document: doc, strict: config.Strict}

	// Step 2: Brace scan
	result.Scan = cssbrace.ScanDocument(doc, opts)
	log.Verbose("scanned %d lines (%d comment lines skipped): %d opening, %d closing",
		result.Scan.LinesScanned, result.Scan.LinesSkipped, result.Scan.Opens, result.Scan.Closes)
	diags := append([]cssbrace.Diagnostic(nil), result.Scan.Diagnostics...)

	// Step 3: Token-aware cross-check
	if config.Lexical {
		result.Lexical = cssbrace.ScanLexical(doc, opts)
		if result.Lexical.Balance != result.Scan.Balance {
			diags = append(diags, cssbrace.Diagnostic{
				Message: fmt.Sprintf("token-aware balance is %d, line balance is %d; braces inside comments or strings are miscounted",
					result.Lexical.Balance, result.Scan.Balance),
				Severity: cssbrace.SeverityWarning,
				Kind:     cssbrace.KindBraceBalance,
			})
		}
	}

	// Step 4: Heuristic syntax warnings
	if config.Syntax {
		syntaxOpts := cssbrace.DefaultSyntaxOptions()
		syntaxOpts.CommentPrefixes = opts.CommentPrefixes
		syntaxOpts.SnippetWidth = opts.SnippetWidth
		syntaxOpts.MaxWarnings = 0
		result.Syntax = cssbrace.CheckSyntax(doc, syntaxOpts)
		for _, d := range result.Syntax.Diagnostics() {
			// The brace scan already reports balance with line numbers
			if d.Kind != cssbrace.KindBraceBalance {
				diags = append(diags, d)
			}
		}
	}

	// Step 5: Statistics
	result.Structure = cssbrace.AnalyzeStructure(doc, cssbrace.StructureOptions{})

	// Step 6: Convert and limit
	result.Issues = cssbrace.NewIssues(doc, diags)
	cssbrace.SortIssues(result.Issues)
	result.ErrorCount, result.WarningCount = countSeverities(result.Issues)

	if config.MaxIssues > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// ResolveStylesheet returns path when set, otherwise the first existing
// candidate under root.
func ResolveStylesheet(path, root string, candidates []string, log *Logger) (string, error) {
	if path != "" {
		return path, nil
	}

	locator := cssbrace.NewLocator(root, candidates)
	found, err := locator.Locate()
	if err != nil {
		return "", fmt.Errorf("locate stylesheet: %w", err)
	}
	log.Verbose("found stylesheet at %s", found)
	return found, nil
}

// scanOptions fills unset options with defaults
func scanOptions(config Config) cssbrace.ScanOptions {
	opts := cssbrace.DefaultScanOptions()
	if len(config.CommentPrefixes) > 0 {
		opts.CommentPrefixes = config.CommentPrefixes
	}
	if config.SnippetWidth > 0 {
		opts.SnippetWidth = config.SnippetWidth
	}
	opts.ShowUnclosed = config.ShowUnclosed
	return opts
}

func countSeverities(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case cssbrace.SeverityError:
			errors++
		case cssbrace.SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// limitIssues applies max-issues and max-same-issues constraints
func limitIssues(issues []Issue, config Config) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	// Deduplication by message text
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
