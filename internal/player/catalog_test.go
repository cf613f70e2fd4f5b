package player

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
}

func TestCatalog_GamesSortedDirectoriesOnly(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"zombies/a.mp4",
		"deer/b.mp4",
		"boar/c.mp4",
		"readme.txt",
	)

	c, err := NewCatalog(&CatalogConfig{Root: root, Seed: 1})
	require.NoError(t, err)

	games, err := c.Games()
	require.NoError(t, err)
	assert.Equal(t, []string{"boar", "deer", "zombies"}, games)
}

func TestCatalog_PickVideoOnlyMP4(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"deer/one.mp4",
		"deer/two.MP4",
		"deer/notes.txt",
		"deer/poster.png",
	)

	c, err := NewCatalog(&CatalogConfig{Root: root, Seed: 42})
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		path, err := c.PickVideo("deer")
		require.NoError(t, err)
		seen[filepath.Base(path)] = true
	}
	assert.Equal(t, map[string]bool{"one.mp4": true, "two.MP4": true}, seen)
}

func TestCatalog_PickVideoIsSeeded(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "deer/a.mp4", "deer/b.mp4", "deer/c.mp4", "deer/d.mp4")

	pick := func() []string {
		c, err := NewCatalog(&CatalogConfig{Root: root, Seed: 9})
		require.NoError(t, err)
		var out []string
		for i := 0; i < 5; i++ {
			p, err := c.PickVideo("deer")
			require.NoError(t, err)
			out = append(out, p)
		}
		return out
	}
	assert.Equal(t, pick(), pick())
}

func TestCatalog_PickVideoErrors(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "empty/readme.txt")

	c, err := NewCatalog(&CatalogConfig{Root: root, Seed: 1})
	require.NoError(t, err)

	_, err = c.PickVideo("empty")
	assert.ErrorIs(t, err, ErrNoVideos)

	_, err = c.PickVideo("missing")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestNewCatalog_RequiresRoot(t *testing.T) {
	_, err := NewCatalog(&CatalogConfig{})
	assert.Error(t, err)
}
