// format-shift converts files between JSON and CSV.
package main

import (
	"os"

	fscli "github.com/formatshift/formatshift/formatshift/go/cmd/format-shift/cli"
	"github.com/formatshift/formatshift/go/sklog"
)

func main() {
	app := fscli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fscli.ReportError(os.Stderr, err)
		sklog.Flush()
		os.Exit(1)
	}
}
