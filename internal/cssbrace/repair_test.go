package cssbrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDeleteLines(t *testing.T) {
	doc := ParseDocument("styles.css", ".a {\n}\n}\n.b {\n}\n}")

	plan, err := PlanDeleteLines(doc, []int{6, 3, 6})
	require.NoError(t, err)

	assert.Equal(t, []Deletion{
		{Line: 3, Text: "}", Reason: "requested"},
		{Line: 6, Text: "}", Reason: "requested"},
	}, plan.Deletions)
	assert.False(t, plan.Empty())
}

func TestPlanDeleteLines_OutOfRange(t *testing.T) {
	doc := ParseDocument("styles.css", ".a {\n}")

	for _, n := range []int{0, 3, -1} {
		_, err := PlanDeleteLines(doc, []int{n})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	}
}

func TestPlanOrphanBraces(t *testing.T) {
	doc := ParseDocument("styles.css", ".a {\n}\n}\n/* note */\n}\n.b {\n  }")

	plan := PlanOrphanBraces(doc)

	require.Len(t, plan.Deletions, 2)
	assert.Equal(t, 3, plan.Deletions[0].Line)
	assert.Equal(t, `orphan brace after "}"`, plan.Deletions[0].Reason)
	assert.Equal(t, 5, plan.Deletions[1].Line)
}

func TestPlanOrphanBraces_NestedClose(t *testing.T) {
	plan := PlanOrphanBraces(ParseDocument("styles.css", ".a {\n  .b {\n  }\n}"))

	// "}" after "  }" is a legitimate outer close in a nested block,
	// which the heuristic cannot tell apart from an orphan.
	assert.Len(t, plan.Deletions, 1)
}

func TestApply(t *testing.T) {
	doc := ParseDocument("styles.css", ".a {\n}\n}\n/* note */\n}\n.b {\n  }")
	plan := PlanOrphanBraces(doc)

	fixed := Apply(doc, plan)

	assert.Equal(t, []string{".a {", "}", "/* note */", ".b {", "  }"}, fixed.Lines)
	assert.Equal(t, len(fixed.Content()), fixed.Size)
	assert.Equal(t, 0, ScanDocument(fixed, DefaultScanOptions()).Balance)

	// Original is untouched
	assert.Len(t, doc.Lines, 7)
	assert.Equal(t, -2, ScanDocument(doc, DefaultScanOptions()).Balance)
}

func TestApply_EmptyPlan(t *testing.T) {
	doc := ParseDocument("styles.css", ".a {\n}")

	fixed := Apply(doc, &RepairPlan{})

	assert.Equal(t, doc.Lines, fixed.Lines)
	assert.Equal(t, doc.Path, fixed.Path)
}
