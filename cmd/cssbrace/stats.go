package main

import (
	"os"

	"github.com/spf13/cobra"
	internal "github.com/yacobolo/cssbrace/internal/cssbrace"
)

var statsCmd = &cobra.Command{
	Use:   "stats [stylesheet]",
	Short: "Print structural statistics of a stylesheet",
	Long: `Tokenize the stylesheet and count rules, declarations, comments, media
queries, keyframes, and custom properties.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		doc, err := loadStylesheet(args)
		if err != nil {
			return err
		}

		st := internal.AnalyzeStructure(doc, internal.StructureOptions{
			VariableFilter: getStringWithFallback("variable-filter", "audit.variable-filter", ""),
			MaxHighlighted: 5,
		})
		internal.NewVerboseReporter(os.Stdout, useColors()).PrintStatistics(st)
		return nil
	},
}

func init() {
	statsCmd.Flags().String("variable-filter", "", "Highlight custom properties containing this text")
}
