package fileutil

import (
	"os"
	"path/filepath"

	"github.com/formatshift/formatshift/go/skerr"
)

// DirMode is the permission given to directories created by EnsureDirExists.
const DirMode os.FileMode = 0755

// EnsureDirExists checks whether the given path to a directory exits and creates it,
// along with any missing parents, if necessary. Returns the absolute path that
// corresponds to the input path and an error indicating a problem.
func EnsureDirExists(dirPath string) (string, error) {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return "", skerr.Wrap(err)
	}
	if err := os.MkdirAll(absPath, DirMode); err != nil {
		return "", skerr.Wrapf(err, "creating directory %s", absPath)
	}
	return absPath, nil
}

// FileExists returns true if path names an existing file that can be
// stat'ed. Directories do not count.
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}
