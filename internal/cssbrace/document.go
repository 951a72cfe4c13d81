package cssbrace

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Document is a stylesheet loaded as an ordered sequence of lines.
// It is never mutated once loaded; repairs produce a new Document.
type Document struct {
	Path  string
	Lines []string
	Size  int // Bytes in the original content
}

// ParseDocument splits content into lines on '\n'.
func ParseDocument(path, content string) *Document {
	return &Document{
		Path:  path,
		Lines: strings.Split(content, "\n"),
		Size:  len(content),
	}
}

// LoadDocument reads a stylesheet from disk
func LoadDocument(path string) (*Document, error) {
	// #nosec G304 - path comes from the command line or configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return ParseDocument(path, string(content)), nil
}

// Content joins the lines back together
func (d *Document) Content() string {
	return strings.Join(d.Lines, "\n")
}

// Line returns the 1-based line, or "" when out of range
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}
	return d.Lines[n-1]
}

// WriteDocument overwrites path with the document content
func WriteDocument(path string, doc *Document) error {
	info, err := os.Stat(path)
	mode := os.FileMode(0644)
	if err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(doc.Content()), mode); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}

// Snippet trims a line and truncates it to width display columns.
// A width of 0 keeps the whole line.
func Snippet(line string, width int) string {
	s := strings.TrimSpace(line)
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}
