package cssbrace

import (
	"io"

	"github.com/yacobolo/cssbrace/internal/cssbrace"
)

// Audit check names, in the order they run
const (
	CheckSyntax    = "Syntax"
	CheckBlocks    = "Blocks"
	CheckImports   = "Imports"
	CheckStructure = "Structure"
)

// AuditConfig holds audit configuration
type AuditConfig struct {
	Path       string
	Root       string
	Candidates []string

	EntryPath   string // File expected to import the stylesheet; default preview.ts beside it
	SkipImports bool

	CommentPrefixes []string
	SnippetWidth    int
	ShowUnclosed    int // Unclosed selectors listed (0 = all)
	MaxWarnings     int // Syntax warnings listed (0 = all)
	VariableFilter  string
}

// AuditResult contains the outcome of every audit check
type AuditResult struct {
	Path      string
	Document  *cssbrace.Document
	Syntax    *cssbrace.SyntaxResult
	Blocks    *cssbrace.BlocksResult
	Import    *cssbrace.ImportResult // nil when skipped or failed
	ImportErr error
	Structure *cssbrace.Structure
	Outcomes  []cssbrace.CheckOutcome
}

// Passed reports whether every check passed
func (r *AuditResult) Passed() bool {
	for _, o := range r.Outcomes {
		if !o.Passed {
			return false
		}
	}
	return true
}

// Audit runs syntax, block, import, and structure checks on a stylesheet.
// A missing stylesheet is an error; a missing entry file only fails the
// import check.
func Audit(config AuditConfig, log *Logger) (*AuditResult, error) {
	path, err := ResolveStylesheet(config.Path, config.Root, config.Candidates, log)
	if err != nil {
		return nil, err
	}

	doc, err := cssbrace.LoadDocument(path)
	if err != nil {
		return nil, err
	}

	scanOpts := scanOptions(Config{
		CommentPrefixes: config.CommentPrefixes,
		SnippetWidth:    config.SnippetWidth,
		ShowUnclosed:    config.ShowUnclosed,
	})
	result := &AuditResult{Path: path, Document: doc}

	// 1. Syntax
	syntaxOpts := cssbrace.SyntaxOptions{
		CommentPrefixes: scanOpts.CommentPrefixes,
		SnippetWidth:    scanOpts.SnippetWidth,
		MaxWarnings:     config.MaxWarnings,
	}
	result.Syntax = cssbrace.CheckSyntax(doc, syntaxOpts)
	result.Outcomes = append(result.Outcomes, cssbrace.CheckOutcome{Name: CheckSyntax, Passed: result.Syntax.Passed()})
	log.Verbose("syntax: %d errors, %d warnings", len(result.Syntax.Errors), len(result.Syntax.Warnings)+result.Syntax.WarningsDropped)

	// 2. Blocks
	result.Blocks = cssbrace.FindUnclosedBlocks(doc, scanOpts)
	result.Outcomes = append(result.Outcomes, cssbrace.CheckOutcome{Name: CheckBlocks, Passed: result.Blocks.Passed()})
	log.Verbose("blocks: %d unclosed, %d unmatched closers", len(result.Blocks.Unclosed), len(result.Blocks.Unmatched))

	// 3. Imports
	if !config.SkipImports {
		entry := config.EntryPath
		if entry == "" {
			entry = cssbrace.DefaultEntryPath(path)
		}
		result.Import, result.ImportErr = cssbrace.CheckImport(entry, path)
		passed := result.ImportErr == nil && result.Import.Found
		result.Outcomes = append(result.Outcomes, cssbrace.CheckOutcome{Name: CheckImports, Passed: passed})
		log.Verbose("imports: entry %s, passed=%t", entry, passed)
	}

	// 4. Structure (informational, always passes)
	result.Structure = cssbrace.AnalyzeStructure(doc, cssbrace.StructureOptions{
		VariableFilter: config.VariableFilter,
		MaxHighlighted: 5,
	})
	result.Outcomes = append(result.Outcomes, cssbrace.CheckOutcome{Name: CheckStructure, Passed: true})

	return result, nil
}

// WriteAudit prints every audit section followed by the pass/fail summary
func WriteAudit(w io.Writer, result *AuditResult, useColors bool) {
	r := cssbrace.NewVerboseReporter(w, useColors)

	r.PrintSyntax(result.Document, result.Syntax)
	r.PrintBlocks(result.Blocks)
	switch {
	case result.ImportErr != nil:
		r.PrintImportError(result.ImportErr)
	case result.Import != nil:
		r.PrintImport(result.Import)
	}
	r.PrintStatistics(result.Structure)
	r.PrintOutcomes(result.Outcomes)
}
