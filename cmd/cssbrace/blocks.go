package main

import (
	"os"

	"github.com/spf13/cobra"
	internal "github.com/yacobolo/cssbrace/internal/cssbrace"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks [stylesheet]",
	Short: "List selector blocks that are never closed",
	Long: `Track selector blocks one per line: a line with '{' opens the block named
by the text before it, a line with '}' closes the most recent one. Reports
the most recent unclosed selectors and any closing brace with no block.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		doc, err := loadStylesheet(args)
		if err != nil {
			return err
		}

		result := internal.FindUnclosedBlocks(doc, scanOptionsFromConfig())
		if !getBoolWithFallback("quiet", "quiet", false) {
			internal.NewVerboseReporter(os.Stdout, useColors()).PrintBlocks(result)
		}

		if !result.Passed() {
			return errChecksFailed
		}
		return nil
	},
}
