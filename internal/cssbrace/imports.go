package cssbrace

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ImportLine is an entry-file line that mentions the stylesheet
type ImportLine struct {
	Line int
	Text string
}

// ImportResult reports whether an entry file imports the stylesheet
type ImportResult struct {
	EntryPath  string
	Stylesheet string
	Found      bool
	Lines      []ImportLine
}

// DefaultEntryPath returns the entry file expected to import the stylesheet:
// preview.ts in the stylesheet's directory.
func DefaultEntryPath(stylesheetPath string) string {
	return filepath.Join(filepath.Dir(stylesheetPath), "preview.ts")
}

// CheckImport verifies that entryPath imports stylesheetPath through a
// relative "./name.css" reference. Both files must exist.
func CheckImport(entryPath, stylesheetPath string) (*ImportResult, error) {
	if _, err := os.Stat(stylesheetPath); err != nil {
		return nil, fmt.Errorf("stylesheet not found: %w", err)
	}

	// #nosec G304 - entry path comes from configuration
	f, err := os.Open(entryPath)
	if err != nil {
		return nil, fmt.Errorf("entry file not found: %w", err)
	}
	defer f.Close()

	base := filepath.Base(stylesheetPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	ref := "./" + base

	result := &ImportResult{EntryPath: entryPath, Stylesheet: stylesheetPath}

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if strings.Contains(line, ref) {
			result.Found = true
		}
		if strings.Contains(line, name) {
			result.Lines = append(result.Lines, ImportLine{
				Line: lineNum,
				Text: strings.TrimSpace(line),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read entry file: %w", err)
	}

	if !result.Found {
		result.Lines = nil
	}

	return result, nil
}
