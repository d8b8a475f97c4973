package convert

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/formatshift/formatshift/go/skerr"
	"github.com/iancoleman/orderedmap"
)

// Record is one row of tabular data: field names mapped to their CSV string
// form, in insertion order.
type Record struct {
	fields *orderedmap.OrderedMap
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{fields: orderedmap.New()}
}

// Set sets the value of a field. A field that is already present keeps its
// position.
func (r *Record) Set(field, value string) {
	r.fields.Set(field, value)
}

// Get returns the value of a field and whether it is present.
func (r *Record) Get(field string) (string, bool) {
	v, ok := r.fields.Get(field)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Fields returns a copy of the field names in order.
func (r *Record) Fields() []string {
	return append([]string{}, r.fields.Keys()...)
}

// MarshalJSON writes the record as a JSON object with every value a string.
// Field order is kept and HTML characters are not escaped.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range r.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		value, _ := r.Get(field)
		if err := writeJSONString(&buf, field); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return skerr.Wrap(err)
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// Document is an ordered sequence of Records plus the header that covers
// them.
type Document struct {
	// Fields is the union of every record's field names, in the order they
	// were first seen.
	Fields []string

	// Records in input order.
	Records []*Record

	seen map[string]bool
}

// NewDocument returns a Document whose header starts with fields.
func NewDocument(fields ...string) *Document {
	d := &Document{
		Fields:  []string{},
		Records: []*Record{},
		seen:    map[string]bool{},
	}
	d.addFields(fields)
	return d
}

func (d *Document) addFields(fields []string) {
	for _, f := range fields {
		if !d.seen[f] {
			d.seen[f] = true
			d.Fields = append(d.Fields, f)
		}
	}
}

// Append adds r to the document, extending Fields with any field names not
// seen before.
func (d *Document) Append(r *Record) {
	d.addFields(r.Fields())
	d.Records = append(d.Records, r)
}

// JSON returns the records as a JSON array indented with two spaces. A
// document without records is "[]".
func (d *Document) JSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	records := d.Records
	if records == nil {
		records = []*Record{}
	}
	if err := enc.Encode(records); err != nil {
		return "", skerr.Wrap(err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
