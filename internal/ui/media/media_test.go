package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "cat.jpg"), []byte("x"), 0o644))

	r := NewResolver(dir)

	img := r.Resolve("images/cat.jpg")
	assert.True(t, img.Available)
	assert.Equal(t, filepath.Join(dir, "images", "cat.jpg"), img.Path)
	assert.Equal(t, "cat.jpg", img.Name)
	assert.Contains(t, img.Label(), "cat.jpg")

	abs := r.Resolve("file://" + filepath.ToSlash(filepath.Join(dir, "images", "cat.jpg")))
	assert.True(t, abs.Available)
}

func TestResolve_FallsBackToPlaceholder(t *testing.T) {
	r := NewResolver(t.TempDir())

	tests := []string{
		"images/missing.png",
		"https://example.com/cat.png",
		"../outside.png",
		"images/../../outside.png",
		"..",
		"images",
	}
	for _, loc := range tests {
		img := r.Resolve(loc)
		assert.False(t, img.Available, loc)
		assert.Equal(t, Placeholder, img.Label(), loc)
	}
}

func TestResolve_DotPrefixedNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "..hero.png"), []byte("x"), 0o644))

	img := NewResolver(dir).Resolve("..hero.png")
	assert.True(t, img.Available)
	assert.Equal(t, filepath.Join(dir, "..hero.png"), img.Path)
}
