// Package sklog defines the logging functions (e.g. Infof, Warningf, etc.).
//
// Lines go to whatever sklogimpl.Logger is installed, stderr by default.
package sklog

import (
	"os"

	"github.com/formatshift/formatshift/go/sklog/sklogimpl"
	"github.com/formatshift/formatshift/go/sklog/stdlogging"
)

func init() {
	sklogimpl.SetLogger(stdlogging.New(os.Stderr, false))
}

func Debugf(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Debug, format, v...)
}

func Infof(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Info, format, v...)
}

func Warningf(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Warning, format, v...)
}

// ErrorfWithDepth logs an error reported depth frames above the caller, for
// helpers that log on behalf of their caller.
func ErrorfWithDepth(depth int, format string, v ...interface{}) {
	sklogimpl.Log(1+depth, sklogimpl.Error, format, v...)
}

func Flush() {
	sklogimpl.Flush()
}
