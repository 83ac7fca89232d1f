package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDerivesCollisionFreeNames(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	name1, err := store.Save(7, 1, "photo.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	name2, err := store.Save(7, 2, "photo.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.Equal(t, "7_1_photo.jpg", name1)
	assert.Equal(t, "7_2_photo.jpg", name2)
	assert.NotEqual(t, name1, name2)
}

func TestSaveWritesContent(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPhotoStore(dir)
	require.NoError(t, err)

	name, err := store.Save(1, 1, "shot.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSaveSanitizesTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPhotoStore(dir)
	require.NoError(t, err)

	name, err := store.Save(3, 4, "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")
	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}

func TestRemoveMissingFileIsSilent(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	// Must not panic or error on absent or empty names
	store.Remove("does-not-exist.jpg")
	store.Remove("")
}
