// Package timer makes timing operations easier.
package timer

import (
	"time"

	"github.com/formatshift/formatshift/go/sklog"
)

// Timer is for timing events. When finished the duration is logged at debug
// level, so it only shows up with --verbose.
//
// The standard way to use Timer is at the top of the func you
// want to measure:
//
//	defer timer.New("json2csv in.json").Stop()
type Timer struct {
	Begin time.Time
	Name  string
}

func New(name string) *Timer {
	return &Timer{
		Begin: time.Now(),
		Name:  name,
	}
}

// Stop logs and returns the time since New.
func (t Timer) Stop() time.Duration {
	elapsed := time.Since(t.Begin)
	sklog.Debugf("%s took %v", t.Name, elapsed)
	return elapsed
}
