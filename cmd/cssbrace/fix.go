package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	internal "github.com/yacobolo/cssbrace/internal/cssbrace"
)

var fixCmd = &cobra.Command{
	Use:   "fix [stylesheet]",
	Short: "Delete stray closing-brace lines",
	Long: `Delete lines from the stylesheet, either the ones named with --lines or the
orphan braces found with --orphans: lines holding only '}' right after a
line that already ends a block or opens a comment.

Without --write the planned deletions are printed and nothing is changed.
Check the result with 'cssbrace check' afterwards.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runFix,
}

func init() {
	f := fixCmd.Flags()
	f.IntSlice("lines", nil, "1-based line numbers to delete")
	f.Bool("orphans", false, "Delete orphan '}' lines")
	f.Bool("write", false, "Rewrite the stylesheet in place")
}

func runFix(cmd *cobra.Command, args []string) error {
	lines, _ := cmd.Flags().GetIntSlice("lines")
	orphans, _ := cmd.Flags().GetBool("orphans")
	write, _ := cmd.Flags().GetBool("write")

	if (len(lines) > 0) == orphans {
		return errors.New("use exactly one of --lines or --orphans")
	}

	doc, err := loadStylesheet(args)
	if err != nil {
		return err
	}

	var plan *internal.RepairPlan
	if orphans {
		plan = internal.PlanOrphanBraces(doc)
	} else if plan, err = internal.PlanDeleteLines(doc, lines); err != nil {
		return err
	}

	out := os.Stdout
	colors := useColors()
	r := internal.NewVerboseReporter(out, colors)

	fmt.Fprintf(out, "Total lines: %d\n", len(doc.Lines))
	r.PrintPlan(plan, write)

	if plan.Empty() {
		return nil
	}

	fixed := internal.Apply(doc, plan)
	balance := internal.ScanDocument(fixed, scanOptionsFromConfig()).Balance

	if !write {
		fmt.Fprintf(out, "\nBalance after fix would be %d. Re-run with --write to apply.\n", balance)
		return nil
	}

	if err := internal.WriteDocument(doc.Path, fixed); err != nil {
		return err
	}

	fmt.Fprintln(out, "")
	fmt.Fprintln(out, internal.RenderStyle(internal.StyleGreen, "✓ "+doc.Path+" rewritten", colors))
	fmt.Fprintf(out, "  Lines: %d\n", len(fixed.Lines))
	fmt.Fprintf(out, "  Size: %d bytes\n", fixed.Size)
	fmt.Fprintf(out, "  Balance: %d\n", balance)
	return nil
}
