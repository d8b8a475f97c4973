package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutputPath(t *testing.T) {
	test := func(input, ext, expected string) {
		assert.Equal(t, expected, DefaultOutputPath(input, ext), input)
	}
	test("data/in.json", ".csv", filepath.Join("data", "in.csv"))
	test("in.csv", ".json", "in.json")
	test("./in.csv", ".json", "in.json")
	test("/tmp/a/b/report.final.json", ".csv", "/tmp/a/b/report.final.csv")
	test("data/noext", ".csv", filepath.Join("data", "noext.csv"))
	test("data/.hidden", ".json", filepath.Join("data", ".hidden.json"))
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("json2csv")
	require.NoError(t, err)
	assert.Equal(t, JSON2CSV, typ)
	assert.Equal(t, ".csv", typ.Extension())
	assert.Equal(t, "CSV", typ.Format())

	typ, err = ParseType("csv2json")
	require.NoError(t, err)
	assert.Equal(t, CSV2JSON, typ)
	assert.Equal(t, ".json", typ.Extension())
	assert.Equal(t, "JSON", typ.Format())

	_, err = ParseType("xml2csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, `type must be "json2csv" or "csv2json", got "xml2csv"`, err.Error())
}

func TestConvert_Dispatches(t *testing.T) {
	jsonIn := writeTestFile(t, "in.json", `[{"a":1}]`)
	got, err := Convert(context.Background(), JSON2CSV, jsonIn, "")
	require.NoError(t, err)
	assert.Equal(t, "a\n1\n", got)

	csvIn := writeTestFile(t, "in.csv", "a\n1\n")
	got, err = Convert(context.Background(), CSV2JSON, csvIn, "")
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"a\": \"1\"\n  }\n]", got)

	_, err = Convert(context.Background(), Type("bogus"), csvIn, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestConvert_MissingInput_FailsBeforeParsing(t *testing.T) {
	for _, typ := range []Type{JSON2CSV, CSV2JSON} {
		_, err := Convert(context.Background(), typ, filepath.Join(t.TempDir(), "nope"), "")
		require.Error(t, err, typ)
		assert.Equal(t, ValidationError, KindOf(err), typ)
	}
}

func TestCheckInput_Directory_ValidationError(t *testing.T) {
	err := CheckInput(t.TempDir())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestError_IsMatchesKindOnly(t *testing.T) {
	err := newError(ShapeError, "in.json", nil, "JSON file must contain an array of objects")
	assert.True(t, errors.Is(err, ErrShape))
	assert.False(t, errors.Is(err, ErrParse))
	assert.False(t, errors.Is(err, &Error{Kind: ShapeError, Msg: "other"}))

	wrapped := newError(IoError, "out.csv", os.ErrPermission, "failed to write %s", "out.csv")
	assert.True(t, errors.Is(wrapped, ErrIo))
	assert.True(t, errors.Is(wrapped, os.ErrPermission))
	assert.Equal(t, "failed to write out.csv: permission denied", wrapped.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
	assert.Equal(t, EmptyInputError, KindOf(ErrEmptyInput))
	assert.Equal(t, "CsvReadError", CsvReadError.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
