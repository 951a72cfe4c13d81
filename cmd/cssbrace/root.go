package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssbrace [stylesheet]",
	Short: "Brace-balance checker for CSS stylesheets",
	Long: `Scan a CSS stylesheet line by line and report unmatched closing braces
and blocks that are never closed. Exits 1 when the braces do not balance.

With no stylesheet argument, the configured search list is tried in order.`,
	Args: cobra.MaximumNArgs(1),
	// Default behavior: run check when no subcommand is given.
	// We must call loadConfig here because PreRunE of checkCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCheck(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().String("color", "auto", "Colorize output: auto|always|never")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")
	rootCmd.PersistentFlags().String("dir", ".", "Directory the search list is relative to")
	rootCmd.PersistentFlags().StringSlice("search", nil, "Stylesheet paths or globs to try when none is given")
	rootCmd.PersistentFlags().StringSlice("comment-prefix", nil, "Line prefixes treated as comment lines (default \"/*\", \"*\")")
	rootCmd.PersistentFlags().Int("snippet-width", 50, "Display columns kept from each source line")
	rootCmd.PersistentFlags().Int("show-unclosed", 5, "Unclosed blocks listed (0=all)")

	addCheckFlags(rootCmd)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(blocksCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
