package cssbrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const structureFixture = `/* header */
:root {
  --brand-color: #f00;
  --spacing: 4px;
}
.btn {
  color: var(--brand-color);
  padding: 0
}
@media (min-width: 600px) {
  .btn { padding: var(--spacing); }
}
@keyframes spin {
  from { transform: rotate(0deg); }
  to { transform: rotate(360deg); }
}
`

func TestAnalyzeStructure(t *testing.T) {
	doc := ParseDocument("styles.css", structureFixture)

	st := AnalyzeStructure(doc, StructureOptions{})

	assert.Equal(t, len(doc.Lines), st.Lines)
	assert.Equal(t, len(structureFixture), st.Bytes)
	assert.Equal(t, 5, st.Rules)
	assert.Equal(t, 2, st.AtRuleBlocks)
	assert.Equal(t, 7, st.Declarations)
	assert.Equal(t, 1, st.Comments)
	assert.Equal(t, 1, st.MediaQueries)
	assert.Equal(t, 1, st.Keyframes)
	assert.Equal(t, []string{"--brand-color", "--spacing"}, st.CustomProperties)
	assert.Empty(t, st.Highlighted)
}

func TestAnalyzeStructure_VariableFilter(t *testing.T) {
	doc := ParseDocument("styles.css", ":root {\n  --brand-a: 1;\n  --brand-b: 2;\n  --brand-c: 3;\n  --gap: 4px;\n}")

	tests := []struct {
		name string
		opts StructureOptions
		want []string
	}{
		{
			name: "all matches",
			opts: StructureOptions{VariableFilter: "brand"},
			want: []string{"--brand-a", "--brand-b", "--brand-c"},
		},
		{
			name: "limited",
			opts: StructureOptions{VariableFilter: "brand", MaxHighlighted: 2},
			want: []string{"--brand-a", "--brand-b"},
		},
		{
			name: "no match",
			opts: StructureOptions{VariableFilter: "color"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := AnalyzeStructure(doc, tt.opts)
			assert.Equal(t, tt.want, st.Highlighted)
			assert.Len(t, st.CustomProperties, 4)
		})
	}
}
