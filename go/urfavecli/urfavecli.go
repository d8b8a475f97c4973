// Package urfavecli contains helpers for applications built on
// github.com/urfave/cli/v2.
package urfavecli

import (
	"github.com/formatshift/formatshift/go/sklog"
	cli "github.com/urfave/cli/v2"
)

// LogFlags logs the value of every flag of the running command, followed by
// the flags of the app, one line per flag.
func LogFlags(c *cli.Context) {
	logFlags(c, c.Command.Flags)
	logFlags(c, c.App.Flags)
}

func logFlags(c *cli.Context, flags []cli.Flag) {
	for _, f := range flags {
		names := f.Names()
		if len(names) == 0 {
			continue
		}
		sklog.Infof("Flags: --%s=%v", names[0], c.Value(names[0]))
	}
}
