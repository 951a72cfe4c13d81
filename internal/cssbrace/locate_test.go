package cssbrace

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_DefaultCandidates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".storybook", "custom-styles.css"), ".a {}")

	found, err := NewLocator(root, nil).Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".storybook", "custom-styles.css"), found)
}

func TestLocator_FirstCandidateWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "apps", "storybook", ".storybook", "custom-styles.css"), ".a {}")
	writeFile(t, filepath.Join(root, ".storybook", "custom-styles.css"), ".a {}")

	found, err := NewLocator(root, DefaultCandidates).Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "apps", "storybook", ".storybook", "custom-styles.css"), found)
}

func TestLocator_NotFound(t *testing.T) {
	root := t.TempDir()

	_, err := NewLocator(root, nil).Locate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Len(t, nf.Searched, len(DefaultCandidates))
}

func TestLocator_DirectoryIsNotAMatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "custom-styles.css", "keep"), "")

	_, err := NewLocator(root, []string{"custom-styles.css"}).Locate()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocator_Glob(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b", "custom-styles.css"), ".a {}")
	writeFile(t, filepath.Join(root, "a", "nested", "custom-styles.css"), ".a {}")

	found, err := NewLocator(root, []string{"**/custom-styles.css"}).Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a", "nested", "custom-styles.css"), found)
}

func TestLocator_GlobSkipsGitignored(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "node_modules/\n")
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "custom-styles.css"), ".a {}")
	writeFile(t, filepath.Join(root, "src", "custom-styles.css"), ".a {}")

	found, err := NewLocator(root, []string{"**/custom-styles.css"}).Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src", "custom-styles.css"), found)
}
