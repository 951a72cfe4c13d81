package cssbrace

// BlocksResult lists selector blocks that were never closed
type BlocksResult struct {
	Unclosed   []OpenBlock  // All unclosed selectors, oldest first
	Shown      []OpenBlock  // The most recent ones, as reported
	Unmatched  []Diagnostic // Closers with no open selector
	TotalLines int
}

// Passed reports whether every selector block was closed
func (r *BlocksResult) Passed() bool {
	return len(r.Unclosed) == 0 && len(r.Unmatched) == 0
}

// FindUnclosedBlocks tracks selector blocks one per line: a line holding '{'
// opens the block named by the text before it, a line holding '}' closes the
// most recent one.
func FindUnclosedBlocks(doc *Document, opts ScanOptions) *BlocksResult {
	opts.PerLine = true

	result := &BlocksResult{TotalLines: len(doc.Lines)}
	scan := Scan(doc.Lines, opts, func(d Diagnostic) {
		if d.Kind == KindUnmatchedCloser {
			result.Unmatched = append(result.Unmatched, d)
		}
	})

	result.Unclosed = scan.Unclosed
	result.Shown = scan.Unclosed
	if opts.ShowUnclosed > 0 && len(result.Shown) > opts.ShowUnclosed {
		result.Shown = result.Shown[len(result.Shown)-opts.ShowUnclosed:]
	}

	return result
}
