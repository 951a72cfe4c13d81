package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssbrace"
)

var auditCmd = &cobra.Command{
	Use:   "audit [stylesheet]",
	Short: "Run every check and print a pass/fail summary",
	Long: `Run the syntax heuristics, the unclosed-block check, the import check
(the entry file must import the stylesheet), and the structure statistics.
Exit status is 1 when any check fails.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		log := newLogger()
		config := buildAuditConfig(argPath(args))

		result, err := cssbrace.Audit(config, log)
		if err != nil {
			return fmt.Errorf("audit failed: %w", err)
		}

		if !getBoolWithFallback("quiet", "quiet", false) {
			fmt.Fprintf(os.Stdout, "Stylesheet: %s\n", result.Path)
			cssbrace.WriteAudit(os.Stdout, result, useColors())
		}

		if !result.Passed() {
			return errChecksFailed
		}
		return nil
	},
}

func init() {
	f := auditCmd.Flags()
	f.String("entry", "", "File that must import the stylesheet (default: preview.ts beside it)")
	f.Bool("skip-imports", false, "Skip the import check")
	f.Int("max-warnings", 10, "Syntax warnings listed (0=all)")
	f.String("variable-filter", "", "Highlight custom properties containing this text")
}
