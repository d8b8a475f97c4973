// Package convert converts flat tabular data between JSON arrays of objects
// and CSV documents with a header row.
package convert

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/formatshift/formatshift/go/fileutil"
	"github.com/formatshift/formatshift/go/skerr"
	"github.com/formatshift/formatshift/go/sklog"
	"github.com/formatshift/formatshift/go/timer"
	"github.com/formatshift/formatshift/go/util"
)

// Type is a conversion direction.
type Type string

const (
	JSON2CSV Type = "json2csv"
	CSV2JSON Type = "csv2json"
)

// ParseType returns the Type named by s.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case JSON2CSV, CSV2JSON:
		return t, nil
	}
	return "", newError(ValidationError, "", nil, "type must be %q or %q, got %q", JSON2CSV, CSV2JSON, s)
}

// Extension returns the file extension of the conversion's output.
func (t Type) Extension() string {
	if t == JSON2CSV {
		return ".csv"
	}
	return ".json"
}

// Format returns the display name of the conversion's output format.
func (t Type) Format() string {
	if t == JSON2CSV {
		return "CSV"
	}
	return "JSON"
}

// Convert runs the conversion t on inputPath. See JSONToCSV and CSVToJSON.
func Convert(ctx context.Context, t Type, inputPath, outputPath string) (string, error) {
	defer timer.New(string(t) + " " + inputPath).Stop()
	switch t {
	case JSON2CSV:
		return JSONToCSV(inputPath, outputPath)
	case CSV2JSON:
		return CSVToJSON(ctx, inputPath, outputPath)
	}
	_, err := ParseType(string(t))
	return "", err
}

// CheckInput returns a ValidationError if path is not an existing file.
func CheckInput(path string) error {
	if !fileutil.FileExists(path) {
		return newError(ValidationError, path, nil, "input file does not exist: %s", path)
	}
	return nil
}

// DefaultOutputPath returns inputPath with its extension replaced by ext, in
// the same directory. A name with no extension, or a dot file such as
// ".data", gets ext appended.
func DefaultOutputPath(inputPath, ext string) string {
	dir, base := filepath.Split(inputPath)
	if e := filepath.Ext(base); e != base {
		base = strings.TrimSuffix(base, e)
	}
	return filepath.Join(dir, base+ext)
}

// writeOutput writes text to path so that a reader sees either the old file
// or the complete new one.
func writeOutput(path, text, format string) error {
	err := util.WithWriteFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return skerr.Wrap(err)
	})
	if err != nil {
		return newError(IoError, path, err, "failed to write %s", path)
	}
	sklog.Infof("%s file created successfully: %s (%s)", format, path, humanize.Bytes(uint64(len(text))))
	return nil
}
