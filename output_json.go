package cssbrace

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string        `json:"version"`
	Timestamp string        `json:"timestamp"`
	File      string        `json:"file"`
	Summary   JSONSummary   `json:"summary"`
	Balance   JSONBalance   `json:"balance"`
	Lexical   *JSONBalance  `json:"lexical,omitempty"`
	Unclosed  []JSONBlock   `json:"unclosed"`
	Issues    []JSONIssue   `json:"issues"`
	Structure JSONStructure `json:"structure"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues int  `json:"total_issues"`
	Errors      int  `json:"errors"`
	Warnings    int  `json:"warnings"`
	Truncated   int  `json:"truncated"`
	Passed      bool `json:"passed"`
}

// JSONBalance contains the brace counts of one scan
type JSONBalance struct {
	Balance int `json:"balance"`
	Opens   int `json:"opens"`
	Closes  int `json:"closes"`
	Excess  int `json:"excess"`
}

// JSONBlock is an unclosed opener
type JSONBlock struct {
	Line    int    `json:"line"`
	Snippet string `json:"snippet"`
}

// JSONIssue represents a single issue in JSON format
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// JSONStructure contains structural statistics
type JSONStructure struct {
	Lines            int `json:"lines"`
	Bytes            int `json:"bytes"`
	Rules            int `json:"rules"`
	AtRuleBlocks     int `json:"at_rule_blocks"`
	Declarations     int `json:"declarations"`
	Comments         int `json:"comments"`
	MediaQueries     int `json:"media_queries"`
	Keyframes        int `json:"keyframes"`
	CustomProperties int `json:"custom_properties"`
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: string(issue.Severity),
			Kind:     string(issue.Kind),
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	unclosed := make([]JSONBlock, len(result.Scan.Unclosed))
	for i, open := range result.Scan.Unclosed {
		unclosed[i] = JSONBlock{Line: open.Line, Snippet: open.Snippet}
	}

	output := JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		File:      result.Path,
		Summary: JSONSummary{
			TotalIssues: len(result.Issues),
			Errors:      result.ErrorCount,
			Warnings:    result.WarningCount,
			Truncated:   result.TruncatedCount,
			Passed:      !result.Failed(),
		},
		Balance: JSONBalance{
			Balance: result.Scan.Balance,
			Opens:   result.Scan.Opens,
			Closes:  result.Scan.Closes,
			Excess:  result.Scan.Excess,
		},
		Unclosed: unclosed,
		Issues:   jsonIssues,
	}

	if result.Lexical != nil {
		output.Lexical = &JSONBalance{
			Balance: result.Lexical.Balance,
			Opens:   result.Lexical.Opens,
			Closes:  result.Lexical.Closes,
			Excess:  result.Lexical.Excess,
		}
	}

	if st := result.Structure; st != nil {
		output.Structure = JSONStructure{
			Lines:            st.Lines,
			Bytes:            st.Bytes,
			Rules:            st.Rules,
			AtRuleBlocks:     st.AtRuleBlocks,
			Declarations:     st.Declarations,
			Comments:         st.Comments,
			MediaQueries:     st.MediaQueries,
			Keyframes:        st.Keyframes,
			CustomProperties: len(st.CustomProperties),
		}
	}

	return output
}
