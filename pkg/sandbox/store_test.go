package sandbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scadbench/scadbench/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Resolve(t *testing.T) {
	root := t.TempDir()
	store := New(root)

	t.Run("Rejects Absolute Paths", func(t *testing.T) {
		_, err := store.Resolve("/etc/passwd")
		assert.ErrorIs(t, err, domain.ErrPathEscape)
	})

	t.Run("Rejects Parent Traversal", func(t *testing.T) {
		_, err := store.Resolve("../outside.txt")
		assert.ErrorIs(t, err, domain.ErrPathEscape)

		_, err = store.Resolve("nested/../../outside.txt")
		assert.ErrorIs(t, err, domain.ErrPathEscape)
	})

	t.Run("Resolves Relative Paths Under Root", func(t *testing.T) {
		path, err := store.Resolve("parts/bracket.scad")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "parts", "bracket.scad"), path)
	})
}

func TestStore_ReadWrite(t *testing.T) {
	store := New(t.TempDir())

	t.Run("Round Trip", func(t *testing.T) {
		content := "cube([10, 20, 5]);\n"

		n, err := store.WriteFile("bracket.scad", content)
		require.NoError(t, err)
		assert.Equal(t, len(content), n)

		got, err := store.ReadFile("bracket.scad")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("Creates Parent Directories", func(t *testing.T) {
		_, err := store.WriteFile("deeply/nested/part.scad", "sphere(5);")
		require.NoError(t, err)

		got, err := store.ReadFile("deeply/nested/part.scad")
		require.NoError(t, err)
		assert.Equal(t, "sphere(5);", got)
	})

	t.Run("Overwrites Existing Files", func(t *testing.T) {
		_, err := store.WriteFile("part.scad", "first")
		require.NoError(t, err)
		_, err = store.WriteFile("part.scad", "second")
		require.NoError(t, err)

		got, err := store.ReadFile("part.scad")
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("Read Missing File", func(t *testing.T) {
		_, err := store.ReadFile("nope.scad")
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("Escaping Write Creates Nothing", func(t *testing.T) {
		outside := filepath.Join(filepath.Dir(store.Root()), "escape.txt")

		_, err := store.WriteFile("../escape.txt", "boom")
		assert.ErrorIs(t, err, domain.ErrPathEscape)

		_, statErr := os.Stat(outside)
		assert.True(t, os.IsNotExist(statErr))
	})
}
