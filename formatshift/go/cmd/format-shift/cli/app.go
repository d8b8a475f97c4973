// Package cli implements the format-shift command line.
package cli

import (
	"errors"
	"io"

	"github.com/formatshift/formatshift/formatshift/go/convert"
	"github.com/formatshift/formatshift/go/skerr"
	"github.com/formatshift/formatshift/go/sklog/sklogimpl"
	"github.com/formatshift/formatshift/go/sklog/stdlogging"
	"github.com/urfave/cli/v2"
)

// Version is reported by --version. It can be changed via -ldflags.
var Version = "1.0.0"

const verboseFlagName = "verbose"

// NewApp returns the format-shift application. Results and status lines go to
// stdout, log lines to stderr.
func NewApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "format-shift",
		Usage:     "CLI tool to convert files between JSON and CSV formats",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  verboseFlagName,
				Usage: "Log debug lines and the value of every flag.",
			},
		},
		Before: func(ctx *cli.Context) error {
			sklogimpl.SetLogger(stdlogging.New(stdlogging.SyncWriter(stderr), ctx.Bool(verboseFlagName)))
			return nil
		},
		Commands: []*cli.Command{
			ConvertCommand(stdout, stderr),
		},
	}
}

// ReportError prints err to w as a single line.
func ReportError(w io.Writer, err error) {
	console{err: w}.failure(errorMessage(err))
}

// errorMessage returns the one line shown to the user for err. Conversion
// errors carry their own message; anything else loses the call stack that
// skerr added.
func errorMessage(err error) string {
	var convertErr *convert.Error
	if errors.As(err, &convertErr) {
		return convertErr.Error()
	}
	return skerr.Unwrap(err).Error()
}
