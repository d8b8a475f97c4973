package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/formatshift/formatshift/go/skerr"
	"github.com/formatshift/formatshift/go/sklog"
	multierror "github.com/hashicorp/go-multierror"
)

// WriteFileMode is the permission given to files created by WithWriteFile.
const WriteFileMode os.FileMode = 0644

// Close wraps an io.Closer and logs an error if one is returned.
func Close(c io.Closer) {
	if err := c.Close(); err != nil {
		// Don't start the stacktrace here, but at the caller's location
		sklog.ErrorfWithDepth(1, "Failed to Close(): %v", err)
	}
}

// Remove removes the specified file and logs an error if one is returned.
func Remove(name string) {
	if err := os.Remove(name); err != nil {
		sklog.ErrorfWithDepth(1, "Failed to Remove(%s): %v", name, err)
	}
}

// WithWriteFile provides an interface for writing to a backing file using a
// temporary intermediate file in the same directory, which is renamed over
// file only once writeFn and Close have both succeeded. On failure file is
// left untouched and the temporary file is removed.
func WithWriteFile(file string, writeFn func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(file), "."+filepath.Base(file)+".tmp*")
	if err != nil {
		return skerr.Wrapf(err, "failed to create temporary file for %s", file)
	}
	if err := writeFn(f); err != nil {
		var result *multierror.Error
		result = multierror.Append(result, err)
		if closeErr := f.Close(); closeErr != nil {
			result = multierror.Append(result, closeErr)
		}
		if removeErr := os.Remove(f.Name()); removeErr != nil {
			result = multierror.Append(result, removeErr)
		}
		if len(result.Errors) == 1 {
			return err
		}
		return skerr.Wrap(result.ErrorOrNil())
	}
	if err := f.Chmod(WriteFileMode); err != nil {
		Close(f)
		Remove(f.Name())
		return skerr.Wrapf(err, "failed to set mode of temporary file for %s", file)
	}
	if err := f.Close(); err != nil {
		Remove(f.Name())
		return skerr.Wrapf(err, "failed to close temporary file for %s", file)
	}
	if err := os.Rename(f.Name(), file); err != nil {
		Remove(f.Name())
		return skerr.Wrapf(err, "failed to rename temporary file to %s", file)
	}
	return nil
}

// WithReadFile opens the given file for reading and runs the given function.
// The file is closed before returning, whether or not fn fails.
func WithReadFile(file string, fn func(f io.Reader) error) error {
	f, err := os.Open(file)
	if err != nil {
		return skerr.Wrap(err)
	}
	defer Close(f)
	return fn(f)
}
