package cssbrace

import (
	"fmt"
	"io"

	"github.com/yacobolo/cssbrace/internal/cssbrace"
)

// DetermineOutputFormat selects the output format from the --output-format flag
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	// Empty or unknown: issues only, like golangci-lint
	return OutputIssues
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, opts ReporterOptions) error {
	switch format {
	case OutputSummary:
		reporter := cssbrace.NewReporter(w, opts)
		reporter.PrintSummary(result.Summary())

		verbose := cssbrace.NewVerboseReporter(w, opts.UseColors)
		verbose.PrintStatistics(result.Structure)

	case OutputFull:
		reporter := cssbrace.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues, result.Scan.Unclosed)
		reporter.PrintSummary(result.Summary())

		verbose := cssbrace.NewVerboseReporter(w, reporter.UseColors())
		if result.Lexical != nil {
			verbose.PrintHeader("Token-aware Scan")
			fmt.Fprintf(w, "Balance: %d (%d opening, %d closing)\n",
				result.Lexical.Balance, result.Lexical.Opens, result.Lexical.Closes)
		}
		verbose.PrintStatistics(result.Structure)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	default:
		reporter := cssbrace.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues, result.Scan.Unclosed)
		reporter.PrintSummary(result.Summary())
	}

	return nil
}
