// Package sklogimpl holds the logger that the sklog functions write to, so
// that applications and tests can swap it out.
package sklogimpl

import (
	"fmt"
	"sync"
)

// Severity of a log line.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
)

var severityNames = []string{"DEBUG", "INFO", "WARNING", "ERROR"}

func (s Severity) String() string {
	if s < Debug || s > Error {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// Logger is the interface every logging backend implements.
type Logger interface {
	// Log writes one log line. depth is the number of stack frames above the
	// sklog function that made the call, for backends that report callers. An
	// empty format means args are formatted with fmt.Sprint.
	Log(depth int, severity Severity, format string, args ...interface{})

	// Flush blocks until buffered lines are written.
	Flush()
}

var (
	mutex  sync.RWMutex
	logger Logger
)

// SetLogger replaces the current Logger.
func SetLogger(l Logger) {
	mutex.Lock()
	defer mutex.Unlock()
	logger = l
}

func current() Logger {
	mutex.RLock()
	defer mutex.RUnlock()
	return logger
}

// Log sends a line to the current Logger. Lines are dropped if no Logger has
// been set.
func Log(depth int, severity Severity, format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Log(depth+1, severity, format, args...)
	}
}

// Flush flushes the current Logger.
func Flush() {
	if l := current(); l != nil {
		l.Flush()
	}
}
