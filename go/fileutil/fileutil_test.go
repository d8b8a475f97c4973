package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDirExists_CreatesNestedDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	absPath, err := EnsureDirExists(dir)
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(absPath))

	fi, err := os.Stat(absPath)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	// Calling it again on an existing directory is fine.
	_, err = EnsureDirExists(dir)
	require.NoError(t, err)
}

func TestEnsureDirExists_PathIsAFile_ReturnsError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	_, err := EnsureDirExists(filepath.Join(file, "sub"))
	require.Error(t, err)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(file, []byte("a\n1\n"), 0600))

	require.True(t, FileExists(file))
	require.False(t, FileExists(filepath.Join(dir, "missing.csv")))
	require.False(t, FileExists(dir))
	require.False(t, FileExists(""))
}
