package convert

import (
	"errors"
	"fmt"

	"github.com/formatshift/formatshift/go/skerr"
)

// Kind classifies conversion failures.
type Kind int

const (
	// ValidationError is a bad --type value or a missing input file.
	ValidationError Kind = iota + 1
	// ParseError is malformed JSON.
	ParseError
	// ShapeError is JSON whose top level is not an array of objects.
	ShapeError
	// EmptyInputError is a JSON array with no elements.
	EmptyInputError
	// IoError is a failure reading, writing or creating directories.
	IoError
	// CsvReadError is a failure while consuming CSV rows.
	CsvReadError
)

var kindNames = map[Kind]string{
	ValidationError: "ValidationError",
	ParseError:      "ParseError",
	ShapeError:      "ShapeError",
	EmptyInputError: "EmptyInputError",
	IoError:         "IoError",
	CsvReadError:    "CsvReadError",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by every exported function in this package that can
// fail. Error() is a single line suitable for showing to a user.
type Error struct {
	Kind Kind
	// Path is the file involved, if any.
	Path string
	// Msg describes the failure.
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

// Sentinels for use with errors.Is. They match any *Error of the same Kind.
var (
	ErrValidation = &Error{Kind: ValidationError}
	ErrParse      = &Error{Kind: ParseError}
	ErrShape      = &Error{Kind: ShapeError}
	ErrEmptyInput = &Error{Kind: EmptyInputError}
	ErrIo         = &Error{Kind: IoError}
	ErrCsvRead    = &Error{Kind: CsvReadError}
)

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		msg += ": " + skerr.Unwrap(e.Err).Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == "" && t.Path == "" && t.Err == nil
}

// KindOf returns the Kind of the first *Error in err's chain, or 0 if there
// is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind Kind, path string, err error, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Path: path,
		Msg:  fmt.Sprintf(format, args...),
		Err:  err,
	}
}
