package cssbrace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ErrNotFound is returned when no candidate stylesheet exists
var ErrNotFound = errors.New("stylesheet not found")

// DefaultCandidates are searched, in order, when no stylesheet is given
var DefaultCandidates = []string{
	"apps/storybook/.storybook/custom-styles.css",
	".storybook/custom-styles.css",
}

// NotFoundError lists every location that was searched
type NotFoundError struct {
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s (searched: %s)", ErrNotFound, strings.Join(e.Searched, ", "))
}

// Is lets errors.Is match ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Locator finds the stylesheet among candidate paths relative to Root.
// Candidates may be doublestar globs ("**/custom-styles.css"); glob matches
// inside paths ignored by Root/.gitignore are skipped.
type Locator struct {
	Root       string
	Candidates []string

	gitIgnore *ignore.GitIgnore
}

// NewLocator creates a locator and loads Root/.gitignore if present
func NewLocator(root string, candidates []string) *Locator {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}

	l := &Locator{Root: root, Candidates: candidates}

	// Gracefully degrade - no .gitignore is fine
	if gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
		l.gitIgnore = gi
	}

	return l
}

// Locate returns the first candidate that exists as a regular file
func (l *Locator) Locate() (string, error) {
	searched := make([]string, 0, len(l.Candidates))

	for _, candidate := range l.Candidates {
		full := candidate
		if !filepath.IsAbs(full) {
			full = filepath.Join(l.Root, candidate)
		}
		searched = append(searched, full)

		if !isGlob(candidate) {
			if isRegularFile(full) {
				return full, nil
			}
			continue
		}

		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return "", fmt.Errorf("invalid pattern %q: %w", candidate, err)
		}
		sort.Strings(matches)

		for _, match := range matches {
			if l.shouldSkip(match) || !isRegularFile(match) {
				continue
			}
			return match, nil
		}
	}

	return "", &NotFoundError{Searched: searched}
}

// shouldSkip checks a glob match against .gitignore, relative to Root
func (l *Locator) shouldSkip(path string) bool {
	if l.gitIgnore == nil {
		return false
	}

	rel, err := filepath.Rel(l.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		// Outside the project; .gitignore does not apply
		return false
	}
	return l.gitIgnore.MatchesPath(filepath.ToSlash(rel))
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
