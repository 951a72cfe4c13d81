package cssbrace

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssbrace/internal/cssbrace"
)

func writeStylesheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom-styles.css")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		balance   int
		failed    bool
		wantKinds []cssbrace.Kind
		wantLines []int
	}{
		{
			name:    "balanced",
			content: ".a {\n  color: red;\n}\n",
		},
		{
			name:      "extra closer",
			content:   ".a {\n}\n}\n",
			balance:   -1,
			failed:    true,
			wantKinds: []cssbrace.Kind{cssbrace.KindUnmatchedCloser},
			wantLines: []int{3},
		},
		{
			name:      "unclosed block",
			content:   "a{\nb{\n}",
			balance:   1,
			failed:    true,
			wantKinds: []cssbrace.Kind{cssbrace.KindUnclosedBlock},
			wantLines: []int{1},
		},
		{
			name:      "mispaired but zero balance",
			content:   "}\n.a {",
			failed:    true,
			wantKinds: []cssbrace.Kind{cssbrace.KindUnmatchedCloser, cssbrace.KindUnclosedBlock},
			wantLines: []int{1, 2},
		},
		{
			name:    "brace in comment line",
			content: "/* .old { */\n.a {\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeStylesheet(t, tt.content)

			result, err := Check(Config{Path: path}, nil)
			require.NoError(t, err)

			assert.Equal(t, path, result.Path)
			assert.Equal(t, tt.balance, result.Scan.Balance)
			assert.Equal(t, tt.failed, result.Failed())
			require.Len(t, result.Issues, len(tt.wantKinds))
			for i, issue := range result.Issues {
				assert.Equal(t, tt.wantKinds[i], issue.Kind)
				assert.Equal(t, tt.wantLines[i], issue.Pos.Line)
			}
			assert.NotNil(t, result.Structure)
		})
	}
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := Check(Config{Path: filepath.Join(t.TempDir(), "missing.css")}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCheck_SearchList(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, ".storybook", "custom-styles.css")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte(".a {\n}"), 0644))

	result, err := Check(Config{Root: root}, nil)
	require.NoError(t, err)
	assert.Equal(t, target, result.Path)
	assert.False(t, result.Failed())
}

func TestCheck_NotFound(t *testing.T) {
	_, err := Check(Config{Root: t.TempDir()}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, cssbrace.ErrNotFound)
}

func TestCheck_Lexical(t *testing.T) {
	path := writeStylesheet(t, ".a { content: \"}\"; }")

	result, err := Check(Config{Path: path, Lexical: true}, nil)
	require.NoError(t, err)

	require.NotNil(t, result.Lexical)
	assert.Equal(t, 0, result.Lexical.Balance)
	assert.Equal(t, -1, result.Scan.Balance)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)

	// Document-level warning sorts first
	require.Len(t, result.Issues, 2)
	assert.Equal(t, cssbrace.KindBraceBalance, result.Issues[0].Kind)
	assert.Contains(t, result.Issues[0].Text, "token-aware balance is 0, line balance is -1")
}

func TestCheck_LexicalAgrees(t *testing.T) {
	path := writeStylesheet(t, ".a {\n}")

	result, err := Check(Config{Path: path, Lexical: true}, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
}

func TestCheck_SyntaxAndStrict(t *testing.T) {
	path := writeStylesheet(t, ".a {\n  color: red\n}")

	result, err := Check(Config{Path: path, Syntax: true}, nil)
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, cssbrace.KindMissingSemicolon, result.Issues[0].Kind)
	assert.False(t, result.Failed())

	result, err = Check(Config{Path: path, Syntax: true, Strict: true}, nil)
	require.NoError(t, err)
	assert.True(t, result.Failed())
}

func TestCheck_SyntaxSkipsBalanceError(t *testing.T) {
	path := writeStylesheet(t, ".a {\n")

	result, err := Check(Config{Path: path, Syntax: true}, nil)
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, cssbrace.KindUnclosedBlock, result.Issues[0].Kind)
}

func TestCheck_CommentPrefixes(t *testing.T) {
	path := writeStylesheet(t, "// .old {\n.a {\n}")

	result, err := Check(Config{Path: path}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Scan.Balance)

	result, err = Check(Config{Path: path, CommentPrefixes: []string{"//"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Scan.Balance)
}

func TestCheck_Limits(t *testing.T) {
	path := writeStylesheet(t, "}\n}\n}\n")

	tests := []struct {
		name          string
		config        Config
		wantIssues    int
		wantTruncated int
	}{
		{name: "unlimited", config: Config{}, wantIssues: 3},
		{name: "max issues", config: Config{MaxIssues: 1}, wantIssues: 1, wantTruncated: 2},
		{name: "max same issues", config: Config{MaxSameIssues: 2}, wantIssues: 2, wantTruncated: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.Path = path
			result, err := Check(tt.config, nil)
			require.NoError(t, err)

			assert.Len(t, result.Issues, tt.wantIssues)
			assert.Equal(t, tt.wantTruncated, result.TruncatedCount)
			assert.Equal(t, 3, result.ErrorCount)
			assert.Equal(t, tt.wantTruncated, result.Summary().Truncated)
		})
	}
}
