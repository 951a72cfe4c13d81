package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssbrace.yaml config file",
	Long:  `Create a .cssbrace.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created " + defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# cssbrace configuration
# Docs: https://github.com/yacobolo/cssbrace

# Shared settings
verbose: false
color: auto

# Stylesheet to check when no argument is given. Leave empty to try the
# search list instead (paths or doublestar globs, relative to dir).
stylesheet: ""
dir: .
search:
  - apps/storybook/.storybook/custom-styles.css
  - .storybook/custom-styles.css

# Line scanning
scan:
  comment-prefixes:
    - "/*"
    - "*"
  snippet-width: 50
  show-unclosed: 5          # 0 = all

# check command
check:
  lexical: false            # cross-check with the CSS tokenizer
  syntax: false             # add missing-semicolon / var() warnings
  strict: false             # exit 1 on warnings too
  output-format: issues     # issues | summary | full | json
  max-issues: 0             # 0 = unlimited
  max-same-issues: 0        # 0 = unlimited
  print-lines: true
  print-linter-name: true

# audit command
audit:
  entry: ""                 # default: preview.ts beside the stylesheet
  skip-imports: false
  max-warnings: 10          # 0 = all
  variable-filter: ""
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
