package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssbrace"
	internal "github.com/yacobolo/cssbrace/internal/cssbrace"
)

const defaultConfigFile = ".cssbrace.yaml"

var k = koanf.New(".")

// configSections are the nested blocks of the config file. An env var whose
// first segment names a section maps into it: CSSBRACE_CHECK_OUTPUT_FORMAT
// -> check.output-format.
var configSections = map[string]bool{"scan": true, "check": true, "audit": true, "fix": true}

// listKeys hold comma-separated values when set from the environment
var listKeys = map[string]bool{"search": true, "scan.comment-prefixes": true}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(posflag.ProviderWithFlag(cmd.Flags(), ".", k, changedFlag(cmd.Flags())), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// changedFlag skips flags left at their default so they never shadow a
// config file or env value.
func changedFlag(fs *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// A local .env may carry CSSBRACE_* settings; real env vars win.
	_ = godotenv.Load()

	// 2. Environment variables (CSSBRACE_* prefix)
	if err := k.Load(env.ProviderWithValue("CSSBRACE_", ".", envKeyValue), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKeyValue maps CSSBRACE_SCAN_SHOW_UNCLOSED to scan.show-unclosed and
// splits list values on commas.
func envKeyValue(name, value string) (string, interface{}) {
	key := strings.ToLower(strings.TrimPrefix(name, "CSSBRACE_"))

	section, rest, found := strings.Cut(key, "_")
	if found && configSections[section] {
		key = section + "." + strings.ReplaceAll(rest, "_", "-")
	} else {
		key = strings.ReplaceAll(key, "_", "-")
	}

	if listKeys[key] {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return key, out
	}

	return key, value
}

// buildCheckConfig constructs the library's Config struct from koanf state.
func buildCheckConfig(path string) cssbrace.Config {
	return cssbrace.Config{
		Path:            stylesheetPath(path),
		Root:            getStringWithFallback("dir", "dir", "."),
		Candidates:      getStringsWithFallback("search", "search", internal.DefaultCandidates),
		CommentPrefixes: getStringsWithFallback("comment-prefix", "scan.comment-prefixes", internal.DefaultCommentPrefixes),
		SnippetWidth:    getIntWithFallback("snippet-width", "scan.snippet-width", 50),
		ShowUnclosed:    getIntWithFallback("show-unclosed", "scan.show-unclosed", 5),
		Lexical:         getBoolWithFallback("lexical", "check.lexical", false),
		Syntax:          getBoolWithFallback("syntax", "check.syntax", false),
		Strict:          getBoolWithFallback("strict", "check.strict", false),
		MaxIssues:       getIntWithFallback("max-issues", "check.max-issues", 0),
		MaxSameIssues:   getIntWithFallback("max-same-issues", "check.max-same-issues", 0),
	}
}

// buildAuditConfig constructs the library's AuditConfig struct from koanf state.
func buildAuditConfig(path string) cssbrace.AuditConfig {
	return cssbrace.AuditConfig{
		Path:            stylesheetPath(path),
		Root:            getStringWithFallback("dir", "dir", "."),
		Candidates:      getStringsWithFallback("search", "search", internal.DefaultCandidates),
		EntryPath:       getStringWithFallback("entry", "audit.entry", ""),
		SkipImports:     getBoolWithFallback("skip-imports", "audit.skip-imports", false),
		CommentPrefixes: getStringsWithFallback("comment-prefix", "scan.comment-prefixes", internal.DefaultCommentPrefixes),
		SnippetWidth:    getIntWithFallback("snippet-width", "scan.snippet-width", 50),
		ShowUnclosed:    getIntWithFallback("show-unclosed", "scan.show-unclosed", 5),
		MaxWarnings:     getIntWithFallback("max-warnings", "audit.max-warnings", 10),
		VariableFilter:  getStringWithFallback("variable-filter", "audit.variable-filter", ""),
	}
}

// buildReporterOptions constructs the reporter options from koanf state.
func buildReporterOptions() internal.ReporterOptions {
	return internal.ReporterOptions{
		UseColors:       useColors(),
		PrintLines:      getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName: getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		ShowUnclosed:    getIntWithFallback("show-unclosed", "scan.show-unclosed", 5),
	}
}

// stylesheetPath prefers the positional argument over the configured path
func stylesheetPath(arg string) string {
	if arg != "" {
		return arg
	}
	return k.String("stylesheet")
}

func useColors() bool {
	mode := internal.ParseColorMode(getStringWithFallback("color", "color", "auto"))
	return internal.ShouldUseColors(mode, os.Stdout)
}

// newLogger builds the stderr logger from the verbose/quiet settings
func newLogger() *internal.Logger {
	return internal.NewLogger(os.Stderr,
		getBoolWithFallback("verbose", "verbose", false),
		getBoolWithFallback("quiet", "quiet", false),
		internal.ShouldUseColors(internal.ParseColorMode(getStringWithFallback("color", "color", "auto")), os.Stderr))
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
