package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssbrace"
)

var checkCmd = &cobra.Command{
	Use:   "check [stylesheet]",
	Short: "Check that every brace in a stylesheet is paired",
	Long: `Pair every '{' with a later '}' and report closing braces with no opener
and blocks left open at the end of the file. Lines starting with a comment
marker are skipped whole.

Exit status is 1 when the final balance is not zero or an error was found.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	addCheckFlags(checkCmd)
}

func addCheckFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("lexical", false, "Cross-check with a token-aware scan that ignores braces in comments and strings")
	f.Bool("syntax", false, "Include heuristic syntax warnings (missing semicolons, unclosed var())")
	f.Bool("strict", false, "Exit 1 on warnings too")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (bracecheck) suffix on issues")
}

// runCheck is shared between `cssbrace` and `cssbrace check`.
func runCheck(_ *cobra.Command, args []string) error {
	log := newLogger()
	config := buildCheckConfig(argPath(args))

	result, err := cssbrace.Check(config, log)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := cssbrace.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := cssbrace.WriteOutput(os.Stdout, result, format, buildReporterOptions()); err != nil {
			return err
		}
	}

	if result.Failed() {
		return errChecksFailed
	}
	return nil
}

// argPath returns the optional positional stylesheet argument
func argPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
