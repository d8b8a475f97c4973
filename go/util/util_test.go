package util

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithWriteFile_Success_ReplacesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(file, []byte("old contents"), 0600))

	err := WithWriteFile(file, func(w io.Writer) error {
		_, err := io.WriteString(w, "a,b\n1,2\n")
		return err
	})
	require.NoError(t, err)

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(b))

	fi, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, WriteFileMode, fi.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be gone")
}

func TestWithWriteFile_WriteFnFails_LeavesOriginalAndNoTempFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0600))

	myErr := errors.New("half way through")
	err := WithWriteFile(file, func(w io.Writer) error {
		_, _ = io.WriteString(w, "[{\"partial\":")
		return myErr
	})
	require.ErrorIs(t, err, myErr)

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWithWriteFile_MissingDirectory_ReturnsError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "missing", "out.csv")
	err := WithWriteFile(file, func(w io.Writer) error {
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create temporary file")
}

func TestWithReadFile_ReadsContents(t *testing.T) {
	file := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(file, []byte(`[{"a":1}]`), 0600))

	var got string
	err := WithReadFile(file, func(r io.Reader) error {
		b, err := io.ReadAll(r)
		got = string(b)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, `[{"a":1}]`, got)
}

func TestWithReadFile_MissingFile_ReturnsNotExist(t *testing.T) {
	err := WithReadFile(filepath.Join(t.TempDir(), "nope"), func(r io.Reader) error {
		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
