package convert

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/formatshift/formatshift/go/skerr"
	"github.com/formatshift/formatshift/go/sklog"
	"github.com/formatshift/formatshift/go/util"
)

// RecordReader yields one Record per data row of a CSV document. The first
// row is the header. Reading is single-pass: once Next has returned an error,
// including io.EOF, every later call returns the same error.
type RecordReader struct {
	r         *csv.Reader
	header    []string
	headerErr error
	readHead  bool
	err       error
}

// NewRecordReader returns a RecordReader reading from r. Rows may have fewer
// or more fields than the header. A leading UTF-8 byte order mark is skipped.
func NewRecordReader(r io.Reader) *RecordReader {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return &RecordReader{r: cr}
}

// Header returns the field names from the first row, reading it if needed.
// An input with no rows at all returns io.EOF.
func (rr *RecordReader) Header() ([]string, error) {
	if rr.readHead {
		return rr.header, rr.headerErr
	}
	rr.readHead = true
	row, err := rr.r.Read()
	if err != nil {
		if err != io.EOF {
			err = skerr.Wrap(err)
		}
		rr.headerErr = err
		rr.err = err
		return nil, err
	}
	rr.header = make([]string, len(row))
	copy(rr.header, row)
	return rr.header, nil
}

// Next returns the next row as a Record, or io.EOF after the last row. Values
// are always strings. Missing trailing fields are left out of the Record and
// fields past the end of the header are named "_<column index>".
func (rr *RecordReader) Next() (*Record, error) {
	if rr.err != nil {
		return nil, rr.err
	}
	header, err := rr.Header()
	if err != nil {
		return nil, err
	}
	row, err := rr.r.Read()
	if err != nil {
		if err != io.EOF {
			err = skerr.Wrap(err)
		}
		rr.err = err
		return nil, err
	}
	if len(row) > len(header) {
		line, _ := rr.r.FieldPos(0)
		sklog.Warningf("CSV line %d has %d fields but the header has %d", line, len(row), len(header))
	}
	rec := NewRecord()
	for i, value := range row {
		if i < len(header) {
			rec.Set(header[i], value)
		} else {
			rec.Set("_"+strconv.Itoa(i), value)
		}
	}
	return rec, nil
}

// ReadCSV reads a whole CSV document into memory.
func ReadCSV(r io.Reader) (*Document, error) {
	return readCSV(context.Background(), NewRecordReader(r), "")
}

func readCSV(ctx context.Context, rr *RecordReader, path string) (*Document, error) {
	header, err := rr.Header()
	if err == io.EOF {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, newError(CsvReadError, path, err, "failed to read CSV")
	}
	doc := NewDocument(header...)
	for {
		if err := ctx.Err(); err != nil {
			return nil, newError(CsvReadError, path, err, "CSV read interrupted")
		}
		rec, err := rr.Next()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, newError(CsvReadError, path, err, "failed to read CSV")
		}
		doc.Append(rec)
	}
}

// CSVToJSON reads the CSV document at inputPath row by row and returns it as
// a JSON array of objects, indented with two spaces. Every value is a JSON
// string. If outputPath is not empty the text is also written there,
// replacing any existing file.
func CSVToJSON(ctx context.Context, inputPath, outputPath string) (string, error) {
	if err := CheckInput(inputPath); err != nil {
		return "", err
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return "", newError(IoError, inputPath, skerr.Wrap(err), "failed to open %s", inputPath)
	}
	defer util.Close(f)

	doc, err := readCSV(ctx, NewRecordReader(f), inputPath)
	if err != nil {
		return "", err
	}
	text, err := doc.JSON()
	if err != nil {
		return "", newError(IoError, "", err, "failed to convert to JSON")
	}

	if outputPath != "" {
		if err := writeOutput(outputPath, text, "JSON"); err != nil {
			return "", err
		}
	}
	return text, nil
}
