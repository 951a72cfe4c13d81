package cssbrace

import (
	"fmt"
	"sort"
	"strings"
)

// Deletion is one line scheduled for removal
type Deletion struct {
	Line   int    // 1-based line in the original document
	Text   string // Line content as it is now
	Reason string
}

// RepairPlan lists the lines a repair would delete, in ascending order
type RepairPlan struct {
	Deletions []Deletion
}

// Empty reports whether the plan changes nothing
func (p *RepairPlan) Empty() bool {
	return len(p.Deletions) == 0
}

// PlanDeleteLines schedules the given 1-based lines for deletion.
// Duplicates are merged; any line outside the document is an error.
func PlanDeleteLines(doc *Document, lines []int) (*RepairPlan, error) {
	seen := make(map[int]bool, len(lines))
	plan := &RepairPlan{}

	for _, n := range lines {
		if n < 1 || n > len(doc.Lines) {
			return nil, fmt.Errorf("line %d out of range (document has %d lines)", n, len(doc.Lines))
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		plan.Deletions = append(plan.Deletions, Deletion{
			Line:   n,
			Text:   doc.Line(n),
			Reason: "requested",
		})
	}

	sort.Slice(plan.Deletions, func(i, j int) bool {
		return plan.Deletions[i].Line < plan.Deletions[j].Line
	})

	return plan, nil
}

// PlanOrphanBraces schedules lines holding only '}' whose previous line
// already ends a block ('}') or opens a comment ('/*').
func PlanOrphanBraces(doc *Document) *RepairPlan {
	plan := &RepairPlan{}

	for i := 1; i < len(doc.Lines); i++ {
		if strings.TrimSpace(doc.Lines[i]) != "}" {
			continue
		}

		prev := strings.TrimSpace(doc.Lines[i-1])
		if !strings.HasSuffix(prev, "}") && !strings.HasPrefix(prev, "/*") {
			continue
		}

		plan.Deletions = append(plan.Deletions, Deletion{
			Line:   i + 1,
			Text:   doc.Lines[i],
			Reason: fmt.Sprintf("orphan brace after %q", Snippet(prev, 50)),
		})
	}

	return plan
}

// Apply returns a new document without the planned lines.
// The original document is left untouched.
func Apply(doc *Document, plan *RepairPlan) *Document {
	drop := make(map[int]bool, len(plan.Deletions))
	for _, d := range plan.Deletions {
		drop[d.Line] = true
	}

	lines := make([]string, 0, len(doc.Lines)-len(drop))
	for i, line := range doc.Lines {
		if !drop[i+1] {
			lines = append(lines, line)
		}
	}

	out := &Document{Path: doc.Path, Lines: lines}
	out.Size = len(out.Content())
	return out
}
