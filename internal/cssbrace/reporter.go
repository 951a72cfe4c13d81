package cssbrace

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// ReporterOptions configures issue output
type ReporterOptions struct {
	UseColors       bool
	PrintLines      bool // Show the offending source line with a caret
	PrintLinterName bool // Show the (bracecheck) suffix
	ShowUnclosed    int  // Unclosed openers listed under an unclosed-block issue
}

// Summary is the data behind the closing lines of a report
type Summary struct {
	Balance   int
	Excess    int
	Unclosed  []OpenBlock
	Issues    []Issue
	Truncated int
}

// Reporter handles formatting and outputting scan results
type Reporter struct {
	w    io.Writer
	opts ReporterOptions
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, opts ReporterOptions) *Reporter {
	return &Reporter{w: w, opts: opts}
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.opts.UseColors
}

// SortIssues orders issues by file, then line, then column
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// PrintIssues outputs issues in golangci-lint format. unclosed is printed
// under the unclosed-block issue, most recent last.
func (r *Reporter) PrintIssues(issues []Issue, unclosed []OpenBlock) {
	SortIssues(issues)

	for _, issue := range issues {
		r.printIssue(issue)
		if issue.Kind == KindUnclosedBlock {
			r.printUnclosed(unclosed)
		}
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := issue.Pos.Filename + ":"
	if issue.Pos.Line > 0 {
		location = fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
	}

	linterSuffix := ""
	if r.opts.PrintLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := issue.Text
	if issue.Severity == SeverityWarning {
		text = RenderStyle(StyleYellow, "warning: ", r.opts.UseColors) + text
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.opts.UseColors),
		text,
		RenderStyle(StyleGray, linterSuffix, r.opts.UseColors))

	// Print source lines with caret indicator
	if r.opts.PrintLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.opts.UseColors))
	}
}

// printUnclosed lists the most recent unclosed openers
func (r *Reporter) printUnclosed(unclosed []OpenBlock) {
	shown := unclosed
	if r.opts.ShowUnclosed > 0 && len(shown) > r.opts.ShowUnclosed {
		shown = shown[len(shown)-r.opts.ShowUnclosed:]
		fmt.Fprintf(r.w, "\t... %d older unclosed block(s)\n", len(unclosed)-len(shown))
	}
	for _, open := range shown {
		fmt.Fprintf(r.w, "\tline %d: %s\n", open.Line, open.Snippet)
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up with the source line.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the final balance and the issue count summary
func (r *Reporter) PrintSummary(s Summary) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "Final balance: %d\n", s.Balance)
	fmt.Fprintln(r.w, r.verdict(s))

	totalIssues := len(s.Issues)
	var errors, warnings int
	for _, issue := range s.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	switch {
	case totalIssues == 0:
		return
	case errors > 0 && warnings > 0:
		fmt.Fprintf(r.w, "%s (%s, %s)", pluralizeCount(totalIssues, "issue", "issues"),
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	default:
		fmt.Fprint(r.w, pluralizeCount(totalIssues, "issue", "issues"))
	}
	if s.Truncated > 0 {
		fmt.Fprintf(r.w, " (%s truncated)", pluralizeCount(s.Truncated, "issue", "issues"))
	}
	fmt.Fprintln(r.w, ":")

	// Group by kind, in a stable order
	kindCounts := make(map[Kind]int)
	for _, issue := range s.Issues {
		kindCounts[issue.Kind]++
	}
	kinds := make([]string, 0, len(kindCounts))
	for kind := range kindCounts {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(r.w, "* %s: %d\n", kind, kindCounts[Kind(kind)])
	}
}

// verdict describes the balance in one line
func (r *Reporter) verdict(s Summary) string {
	switch {
	case s.Balance == 0 && len(s.Unclosed) == 0 && s.Excess == 0:
		return RenderStyle(StyleGreen, "✓ braces are balanced", r.opts.UseColors)
	case s.Balance > 0:
		return RenderStyle(StyleRed,
			fmt.Sprintf("✗ %s without a closing brace", pluralizeCount(s.Balance, "opening brace", "opening braces")),
			r.opts.UseColors)
	case s.Balance < 0:
		return RenderStyle(StyleRed,
			fmt.Sprintf("✗ %s in excess", pluralizeCount(-s.Balance, "closing brace", "closing braces")),
			r.opts.UseColors)
	default:
		// Zero balance but mispaired: a closer came before its opener
		return RenderStyle(StyleRed,
			fmt.Sprintf("✗ balance is zero but %s never closed", pluralizeCount(len(s.Unclosed), "block is", "blocks are")),
			r.opts.UseColors)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
