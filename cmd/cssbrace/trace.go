package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssbrace"
	internal "github.com/yacobolo/cssbrace/internal/cssbrace"
)

var traceCmd = &cobra.Command{
	Use:   "trace [stylesheet]",
	Short: "Print the running brace balance line by line",
	Long: `Print every line that opens or closes a brace together with the balance
after it, then the final balance. Useful to find where the count drifts.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		doc, err := loadStylesheet(args)
		if err != nil {
			return err
		}

		r := internal.NewVerboseReporter(os.Stdout, useColors())
		fmt.Fprintf(os.Stdout, "Total lines: %d\n\n", len(doc.Lines))

		opts := scanOptionsFromConfig()
		opts.Trace = r.PrintTraceStep
		result := internal.ScanDocument(doc, opts)

		r.PrintBalance(result.Balance)
		if result.Balance != 0 {
			return errChecksFailed
		}
		return nil
	},
}

// loadStylesheet resolves the stylesheet from args or the search list and reads it
func loadStylesheet(args []string) (*internal.Document, error) {
	log := newLogger()
	path, err := cssbrace.ResolveStylesheet(stylesheetPath(argPath(args)),
		getStringWithFallback("dir", "dir", "."),
		getStringsWithFallback("search", "search", internal.DefaultCandidates),
		log)
	if err != nil {
		return nil, err
	}

	doc, err := internal.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	log.Verbose("loaded %s (%d lines, %d bytes)", path, len(doc.Lines), doc.Size)
	return doc, nil
}

// scanOptionsFromConfig builds scan options from the shared scan settings
func scanOptionsFromConfig() internal.ScanOptions {
	opts := internal.DefaultScanOptions()
	opts.CommentPrefixes = getStringsWithFallback("comment-prefix", "scan.comment-prefixes", internal.DefaultCommentPrefixes)
	opts.SnippetWidth = getIntWithFallback("snippet-width", "scan.snippet-width", 50)
	opts.ShowUnclosed = getIntWithFallback("show-unclosed", "scan.show-unclosed", 5)
	return opts
}
