package convert

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/buger/jsonparser"
	"github.com/formatshift/formatshift/go/skerr"
	"github.com/formatshift/formatshift/go/util"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// JSONToCSV reads the JSON array of objects at inputPath and returns it as
// CSV text. If outputPath is not empty the text is also written there,
// replacing any existing file.
func JSONToCSV(inputPath, outputPath string) (string, error) {
	if err := CheckInput(inputPath); err != nil {
		return "", err
	}
	var data []byte
	err := util.WithReadFile(inputPath, func(r io.Reader) error {
		var err error
		data, err = io.ReadAll(r)
		return skerr.Wrap(err)
	})
	if err != nil {
		return "", newError(IoError, inputPath, err, "failed to read %s", inputPath)
	}

	doc, err := ParseJSON(data)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := doc.WriteCSV(&buf); err != nil {
		return "", newError(IoError, "", err, "failed to build CSV")
	}
	text := buf.String()

	if outputPath != "" {
		if err := writeOutput(outputPath, text, "CSV"); err != nil {
			return "", err
		}
	}
	return text, nil
}

// ParseJSON parses a JSON array of flat objects into a Document. Every value
// is converted to the string it would have in a CSV cell.
//
// Checks are made in order: the text must be valid JSON (ParseError), the
// top level value must be an array of objects (ShapeError), and the array
// must not be empty (EmptyInputError).
func ParseJSON(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, newError(ParseError, "", err, "failed to parse JSON")
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, newError(ShapeError, "", nil, "JSON file must contain an array of objects")
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, newError(ParseError, "", err, "failed to parse JSON")
	}
	if len(elements) == 0 {
		return nil, newError(EmptyInputError, "", nil, "JSON array is empty")
	}

	doc := NewDocument()
	for i, element := range elements {
		element = bytes.TrimSpace(element)
		if len(element) == 0 || element[0] != '{' {
			return nil, newError(ShapeError, "", skerr.Fmt("element %d is not an object", i), "JSON file must contain an array of objects")
		}
		rec, err := parseObject(element)
		if err != nil {
			return nil, newError(ParseError, "", err, "failed to parse JSON element %d", i)
		}
		doc.Append(rec)
	}
	return doc, nil
}

// parseObject walks the fields of a JSON object in document order.
func parseObject(object []byte) (*Record, error) {
	rec := NewRecord()
	err := jsonparser.ObjectEach(object, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		s, err := cellValue(value, dataType)
		if err != nil {
			return skerr.Wrapf(err, "field %q", key)
		}
		rec.Set(string(key), s)
		return nil
	})
	if err != nil {
		return nil, skerr.Wrap(err)
	}
	return rec, nil
}

// cellValue converts a JSON value to CSV text. Numbers keep their literal
// form, null becomes empty, and nested values are written as compact JSON.
func cellValue(value []byte, dataType jsonparser.ValueType) (string, error) {
	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return "", skerr.Wrap(err)
		}
		return s, nil
	case jsonparser.Number, jsonparser.Boolean:
		return string(value), nil
	case jsonparser.Null:
		return "", nil
	case jsonparser.Object, jsonparser.Array:
		var buf bytes.Buffer
		if err := json.Compact(&buf, value); err != nil {
			return "", skerr.Wrap(err)
		}
		return buf.String(), nil
	default:
		return "", skerr.Fmt("unsupported JSON value %q", value)
	}
}

// WriteCSV writes a header line followed by one line per record. Fields a
// record does not have are written as empty cells.
func (d *Document) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := writeRow(cw, w, d.Fields); err != nil {
		return err
	}
	row := make([]string, len(d.Fields))
	for _, rec := range d.Records {
		for i, field := range d.Fields {
			row[i], _ = rec.Get(field)
		}
		if err := writeRow(cw, w, row); err != nil {
			return err
		}
	}
	cw.Flush()
	return skerr.Wrap(cw.Error())
}

// writeRow writes row through cw. A row holding a single empty cell is
// written as "" so that it is not read back as a blank line, which CSV
// readers skip.
func writeRow(cw *csv.Writer, w io.Writer, row []string) error {
	if len(row) != 1 || row[0] != "" {
		return skerr.Wrap(cw.Write(row))
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return skerr.Wrap(err)
	}
	_, err := io.WriteString(w, "\"\"\n")
	return skerr.Wrap(err)
}
