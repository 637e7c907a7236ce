package vfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMinimalLSVFile(t *testing.T) string {
	t.Helper()
	path := buildMinimalPKGFile(t)
	lsvPath := filepath.Join(filepath.Dir(path), "archive.lsv")
	require.NoError(t, os.Rename(path, lsvPath))
	return lsvPath
}

func TestOpenFileSplitsAtArchiveComponent(t *testing.T) {
	archivePath := buildMinimalLSVFile(t)

	ref, err := OpenFile(filepath.Join(archivePath, "dir/test.txt"))
	require.NoError(t, err)
	defer ref.Close()

	assert.True(t, ref.IsArchived())

	handle, err := ref.AsPKG()
	require.NoError(t, err)
	assert.Contains(t, handle.Files(), "dir/test.txt")
}

func TestOpenFilePlainFilesystemPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.bin")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	ref, err := OpenFile(path)
	require.NoError(t, err)
	defer ref.Close()

	assert.False(t, ref.IsArchived())

	_, err = ref.AsPKG()
	assert.Error(t, err)
}

func TestOpenFileLastArchiveComponentWins(t *testing.T) {
	outer := buildMinimalLSVFile(t)

	// "inner.lsv" is not a real archive on disk, so splitting at the
	// *last* qualifying component must fail to open it, not silently fall
	// back to splitting at "archive.lsv".
	inner := filepath.Join(outer, "nested", "inner.lsv", "doc.hbt")
	_, err := OpenFile(inner)
	assert.Error(t, err)
}
