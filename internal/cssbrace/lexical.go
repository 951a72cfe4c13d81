package cssbrace

import (
	"bytes"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ScanLexical pairs braces using the CSS tokenizer instead of raw lines.
// Braces inside comments, strings, and url() values are not counted, which
// makes it a cross-check for the line scanner's comment limitation.
// Diagnostics use the same kinds and messages as Scan.
func ScanLexical(doc *Document, opts ScanOptions) *ScanResult {
	result := &ScanResult{LinesScanned: len(doc.Lines)}
	var stack []OpenBlock

	lexer := css.NewLexer(parse.NewInputString(doc.Content()))
	line := 1

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		switch tt {
		case css.LeftBraceToken:
			stack = append(stack, OpenBlock{
				Line:    line,
				Snippet: Snippet(doc.Line(line), opts.SnippetWidth),
			})
			result.Opens++
			result.Balance++
		case css.RightBraceToken:
			result.Closes++
			result.Balance--
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			} else {
				result.Diagnostics = append(result.Diagnostics, Diagnostic{
					Line:     line,
					Message:  MsgUnmatchedCloser,
					Severity: SeverityError,
					Kind:     KindUnmatchedCloser,
					Snippet:  Snippet(doc.Line(line), opts.SnippetWidth),
				})
			}
		}

		line += bytes.Count(text, []byte{'\n'})
	}

	result.Unclosed = stack
	if result.Balance < 0 {
		result.Excess = -result.Balance
	}
	if len(stack) > 0 {
		result.Diagnostics = append(result.Diagnostics, unclosedDiagnostic(stack, opts.ShowUnclosed))
	}

	return result
}
