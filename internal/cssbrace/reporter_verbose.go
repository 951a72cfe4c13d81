package cssbrace

import (
	"fmt"
	"io"
	"strings"
)

// CheckOutcome is the pass/fail line of one audit check
type CheckOutcome struct {
	Name   string
	Passed bool
}

// VerboseReporter handles statistics, traces, and audit sections
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintHeader prints a section title with a rule under it
func (r *VerboseReporter) PrintHeader(title string) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, title, r.useColors))
	fmt.Fprintln(r.w, strings.Repeat("-", len(title)))
}

func (r *VerboseReporter) success(format string, args ...any) {
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleGreen, "✓", r.useColors), fmt.Sprintf(format, args...))
}

func (r *VerboseReporter) failure(format string, args ...any) {
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleRed, "✗", r.useColors), fmt.Sprintf(format, args...))
}

func (r *VerboseReporter) warning(format string, args ...any) {
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleYellow, "⚠", r.useColors), fmt.Sprintf(format, args...))
}

func (r *VerboseReporter) info(format string, args ...any) {
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleBlue, "ℹ", r.useColors), fmt.Sprintf(format, args...))
}

// PrintStatistics outputs structural statistics of the stylesheet
func (r *VerboseReporter) PrintStatistics(st *Structure) {
	if st == nil {
		return
	}
	r.PrintHeader("Stylesheet Structure")

	fmt.Fprintf(r.w, "Lines:                %d\n", st.Lines)
	fmt.Fprintf(r.w, "Size:                 %d bytes\n", st.Bytes)
	fmt.Fprintf(r.w, "Rules:                %d\n", st.Rules)
	fmt.Fprintf(r.w, "At-rule blocks:       %d\n", st.AtRuleBlocks)
	fmt.Fprintf(r.w, "Declarations:         %d\n", st.Declarations)
	fmt.Fprintf(r.w, "Comments:             %d\n", st.Comments)
	fmt.Fprintf(r.w, "Media queries:        %d\n", st.MediaQueries)
	fmt.Fprintf(r.w, "Keyframes:            %d\n", st.Keyframes)
	fmt.Fprintf(r.w, "Custom properties:    %d\n", len(st.CustomProperties))

	if len(st.Highlighted) > 0 {
		fmt.Fprintf(r.w, "Highlighted:          %s\n", strings.Join(st.Highlighted, ", "))
	}
}

// PrintTraceStep prints one balance-changing line:
//
//	line   12 [+1] balance   3 | .card {
func (r *VerboseReporter) PrintTraceStep(step TraceStep) {
	if step.Opens > 0 {
		fmt.Fprintf(r.w, "line %4d [+%d] balance %3d | %s\n",
			step.Line, step.Opens, step.Balance, step.Snippet)
	}
	if step.Closes > 0 {
		fmt.Fprintf(r.w, "line %4d %s balance %3d | %s\n",
			step.Line, RenderStyle(StyleGray, fmt.Sprintf("[-%d]", step.Closes), r.useColors),
			step.Balance, step.Snippet)
	}
}

// PrintBalance prints the final balance and its verdict
func (r *VerboseReporter) PrintBalance(balance int) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, rule)
	fmt.Fprintf(r.w, "FINAL BALANCE: %d\n", balance)
	fmt.Fprintln(r.w, rule)

	switch {
	case balance == 0:
		r.success("braces are balanced")
	case balance > 0:
		r.failure("%s without a closing brace", pluralizeCount(balance, "opening brace", "opening braces"))
	default:
		r.failure("%s in excess", pluralizeCount(-balance, "closing brace", "closing braces"))
	}
}

// PrintSyntax reports heuristic syntax findings
func (r *VerboseReporter) PrintSyntax(doc *Document, res *SyntaxResult) {
	r.PrintHeader("Syntax")
	r.info("Lines: %d", len(doc.Lines))
	r.info("Size: %d bytes", doc.Size)

	if len(res.Errors) > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleRed, fmt.Sprintf("\nErrors (%d):", len(res.Errors)), r.useColors))
		for _, d := range res.Errors {
			r.failure("%s", describe(d))
		}
	}

	total := len(res.Warnings) + res.WarningsDropped
	if total > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, fmt.Sprintf("\nWarnings (%d):", total), r.useColors))
		for _, d := range res.Warnings {
			r.warning("%s", describe(d))
		}
		if res.WarningsDropped > 0 {
			r.warning("... and %d more", res.WarningsDropped)
		}
	}

	switch {
	case len(res.Errors) == 0 && total == 0:
		r.success("no errors or warnings")
	case len(res.Errors) == 0:
		r.success("no errors (warnings only)")
	}
}

// PrintBlocks reports unclosed selector blocks
func (r *VerboseReporter) PrintBlocks(res *BlocksResult) {
	r.PrintHeader("Blocks")

	if len(res.Unclosed) > 0 {
		r.failure("%s", pluralizeCount(len(res.Unclosed), "unclosed block", "unclosed blocks"))
		for _, open := range res.Shown {
			r.failure("  line %d: %s", open.Line, open.Snippet)
		}
	}

	if len(res.Unmatched) > 0 {
		r.failure("closing braces without an opener:")
		for _, d := range res.Unmatched {
			r.failure("  line %d: %s", d.Line, d.Snippet)
		}
	}

	if res.Passed() {
		r.success("every block is closed")
	}
}

// PrintImport reports the import wiring check
func (r *VerboseReporter) PrintImport(res *ImportResult) {
	r.PrintHeader("Imports")

	if !res.Found {
		r.failure("%s does not import %s", res.EntryPath, res.Stylesheet)
		return
	}

	r.success("%s imports %s", res.EntryPath, res.Stylesheet)
	for _, l := range res.Lines {
		r.info("  line %d: %s", l.Line, l.Text)
	}
}

// PrintImportError reports an import check that could not run
func (r *VerboseReporter) PrintImportError(err error) {
	r.PrintHeader("Imports")
	r.failure("%v", err)
}

// PrintOutcomes prints the final pass/fail list and the overall verdict
func (r *VerboseReporter) PrintOutcomes(outcomes []CheckOutcome) {
	r.PrintHeader("Summary")

	passed := 0
	for _, o := range outcomes {
		if o.Passed {
			passed++
			r.success("%s: passed", o.Name)
		} else {
			r.failure("%s: failed", o.Name)
		}
	}

	fmt.Fprintf(r.w, "\nResult: %d/%d checks passed\n", passed, len(outcomes))
	if passed == len(outcomes) {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "All checks passed.", r.useColors))
	} else {
		fmt.Fprintln(r.w, RenderStyle(StyleRed, "Some checks failed. Fix the errors above before continuing.", r.useColors))
	}
}

// PrintPlan lists the deletions of a repair plan
func (r *VerboseReporter) PrintPlan(plan *RepairPlan, applied bool) {
	if plan.Empty() {
		r.success("nothing to remove")
		return
	}

	verb := "would remove"
	if applied {
		verb = "removed"
	}
	for _, d := range plan.Deletions {
		fmt.Fprintf(r.w, "line %4d: %s %q (%s)\n", d.Line, verb, d.Text, d.Reason)
	}
}

// describe renders a diagnostic as "line N: message - 'snippet'"
func describe(d Diagnostic) string {
	var b strings.Builder
	if d.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", d.Line)
	}
	b.WriteString(d.Message)
	if d.Snippet != "" {
		fmt.Fprintf(&b, " - '%s'", d.Snippet)
	}
	return b.String()
}
