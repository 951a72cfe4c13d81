package cssbrace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(s string) []string {
	return strings.Split(s, "\n")
}

func TestScan(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		balance   int
		excess    int
		wantDiags []Diagnostic
	}{
		{
			name:    "balanced nesting",
			input:   "a{\nb{\n}\n}",
			balance: 0,
		},
		{
			name:    "one unclosed opener",
			input:   "a{\nb{\n}",
			balance: 1,
			wantDiags: []Diagnostic{{
				Line:     1,
				Message:  "1 unclosed block(s), most recent opened at line 1",
				Severity: SeverityError,
				Kind:     KindUnclosedBlock,
				Snippet:  "a{",
				Related:  []OpenBlock{{Line: 1, Snippet: "a{"}},
			}},
		},
		{
			name:    "one extra closer",
			input:   "a{\n}\n}",
			balance: -1,
			excess:  1,
			wantDiags: []Diagnostic{{
				Line:     3,
				Message:  MsgUnmatchedCloser,
				Severity: SeverityError,
				Kind:     KindUnmatchedCloser,
				Snippet:  "}",
			}},
		},
		{
			name:    "comment line with brace is skipped",
			input:   "/* a { */\n.b {\n}",
			balance: 0,
		},
		{
			name:    "comment continuation line is skipped",
			input:   "/*\n * {\n */\n.b { }",
			balance: 0,
		},
		{
			name:    "open and close on one line",
			input:   ".btn { color: red; }",
			balance: 0,
		},
		{
			name:    "closer before opener",
			input:   "}\n.a {",
			balance: 0,
			wantDiags: []Diagnostic{
				{
					Line:     1,
					Message:  MsgUnmatchedCloser,
					Severity: SeverityError,
					Kind:     KindUnmatchedCloser,
					Snippet:  "}",
				},
				{
					Line:     2,
					Message:  "1 unclosed block(s), most recent opened at line 2",
					Severity: SeverityError,
					Kind:     KindUnclosedBlock,
					Snippet:  ".a {",
					Related:  []OpenBlock{{Line: 2, Snippet: ".a {"}},
				},
			},
		},
		{
			name:    "empty document",
			input:   "",
			balance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Scan(lines(tt.input), DefaultScanOptions(), nil)

			assert.Equal(t, tt.balance, result.Balance)
			assert.Equal(t, tt.excess, result.Excess)
			assert.Equal(t, tt.wantDiags, result.Diagnostics)
			assert.Equal(t, len(tt.wantDiags) == 0 && tt.balance == 0, result.Balanced())
		})
	}
}

func TestScan_Counts(t *testing.T) {
	result := Scan(lines("/* header */\n.a {\n  color: red;\n}\n\n.b { }"), DefaultScanOptions(), nil)

	assert.Equal(t, 2, result.Opens)
	assert.Equal(t, 2, result.Closes)
	assert.Equal(t, 1, result.LinesSkipped)
	assert.Equal(t, 5, result.LinesScanned)
	assert.Empty(t, result.Unclosed)
}

func TestScan_SkipBlank(t *testing.T) {
	opts := DefaultScanOptions()
	opts.SkipBlank = true

	result := Scan(lines(".a {\n\n   \n}"), opts, nil)

	assert.Equal(t, 2, result.LinesSkipped)
	assert.Equal(t, 2, result.LinesScanned)
	assert.Equal(t, 0, result.Balance)
}

func TestScan_CustomCommentPrefixes(t *testing.T) {
	opts := DefaultScanOptions()
	opts.CommentPrefixes = []string{"//"}

	// "* {" is a universal selector here, not a comment line
	result := Scan(lines("// {\n* {\n}"), opts, nil)

	assert.Equal(t, 0, result.Balance)
	assert.Equal(t, 1, result.LinesSkipped)
	assert.Equal(t, 1, result.Opens)
}

func TestScan_EmitReceivesEveryDiagnostic(t *testing.T) {
	var emitted []Diagnostic
	result := Scan(lines("}\n.a {\n}\n}\n.b {"), DefaultScanOptions(), func(d Diagnostic) {
		emitted = append(emitted, d)
	})

	require.Len(t, emitted, 3)
	assert.Equal(t, result.Diagnostics, emitted)
	assert.Equal(t, KindUnmatchedCloser, emitted[0].Kind)
	assert.Equal(t, 1, emitted[0].Line)
	assert.Equal(t, KindUnmatchedCloser, emitted[1].Kind)
	assert.Equal(t, 4, emitted[1].Line)
	assert.Equal(t, KindUnclosedBlock, emitted[2].Kind)
	assert.Equal(t, 5, emitted[2].Line)
}

func TestScan_Idempotent(t *testing.T) {
	input := lines(".a {\n  .b {\n}\n}\n}\n.c {")

	first := Scan(input, DefaultScanOptions(), nil)
	second := Scan(input, DefaultScanOptions(), nil)

	assert.Equal(t, first, second)
}

func TestScan_ShowUnclosed(t *testing.T) {
	opts := DefaultScanOptions()
	opts.ShowUnclosed = 2

	result := Scan(lines("a{\nb{\nc{"), opts, nil)

	require.Len(t, result.Diagnostics, 1)
	d := result.Diagnostics[0]
	assert.Equal(t, 3, d.Line)
	assert.Equal(t, "3 unclosed block(s), most recent opened at line 3", d.Message)
	assert.Equal(t, []OpenBlock{{Line: 2, Snippet: "b{"}, {Line: 3, Snippet: "c{"}}, d.Related)
	assert.Len(t, result.Unclosed, 3)
}

func TestScan_ShowUnclosedZeroListsAll(t *testing.T) {
	opts := DefaultScanOptions()
	opts.ShowUnclosed = 0

	result := Scan(lines("a{\nb{\nc{"), opts, nil)

	require.Len(t, result.Diagnostics, 1)
	assert.Len(t, result.Diagnostics[0].Related, 3)
}

func TestScan_Trace(t *testing.T) {
	var steps []TraceStep
	opts := DefaultScanOptions()
	opts.Trace = func(s TraceStep) { steps = append(steps, s) }

	Scan(lines(".a {\n  color: red;\n}"), opts, nil)

	assert.Equal(t, []TraceStep{
		{Line: 1, Opens: 1, Closes: 0, Balance: 1, Snippet: ".a {"},
		{Line: 3, Opens: 0, Closes: 1, Balance: 0, Snippet: "}"},
	}, steps)
}

func TestScan_PerLine(t *testing.T) {
	opts := DefaultScanOptions()
	opts.PerLine = true

	tests := []struct {
		name     string
		input    string
		balance  int
		unclosed []OpenBlock
	}{
		{
			name:    "two openers on one line count once",
			input:   ".a { .b {\n}}",
			balance: 0,
		},
		{
			name:    "bare brace line opens nothing",
			input:   ".card {\n  {\n}",
			balance: 0,
		},
		{
			name:     "selector text is the snippet",
			input:    ".a {\n}\n  .b .c {\n",
			balance:  1,
			unclosed: []OpenBlock{{Line: 3, Snippet: ".b .c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Scan(lines(tt.input), opts, nil)
			assert.Equal(t, tt.balance, result.Balance)
			if tt.unclosed == nil {
				assert.Empty(t, result.Unclosed)
			} else {
				assert.Equal(t, tt.unclosed, result.Unclosed)
			}
		})
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  string
	}{
		{name: "trims whitespace", line: "   .a {  ", width: 50, want: ".a {"},
		{name: "truncates", line: "  .very-long-selector {", width: 5, want: ".very"},
		{name: "zero width keeps all", line: ".very-long-selector {", width: 0, want: ".very-long-selector {"},
		{name: "wide runes", line: "日本語", width: 4, want: "日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Snippet(tt.line, tt.width))
		})
	}
}
