// Package skerr provides errors that carry the call stack where they were
// created or wrapped.
package skerr

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// StackTrace is a single frame of a call stack.
type StackTrace struct {
	File string
	Line int
}

// String returns the frame as "file.go:line".
func (st *StackTrace) String() string {
	return fmt.Sprintf("%s:%d", st.File, st.Line)
}

// ErrorWithContext wraps an error with the call stack and any additional
// messages added along the way.
type ErrorWithContext struct {
	// Wrapped is the original error. Never nil.
	Wrapped error
	// CallStack is the stack at the point the error was first wrapped.
	CallStack []StackTrace
	// Context holds messages added by Wrapf, outermost first.
	Context []string
}

// CallStack returns at most height frames of the current stack. startAt is
// the number of frames to skip above the function calling CallStack, so 0
// starts at that function.
func CallStack(height, startAt int) []StackTrace {
	stack := []StackTrace{}
	for i := 0; i < height; i++ {
		_, file, line, ok := runtime.Caller(1 + startAt + i)
		if !ok {
			break
		}
		stack = append(stack, StackTrace{
			File: filepath.Base(file),
			Line: line,
		})
	}
	return stack
}

// Error implements error. The message is followed by the recorded stack.
func (err *ErrorWithContext) Error() string {
	var out strings.Builder
	for _, c := range err.Context {
		out.WriteString(c)
		out.WriteString(": ")
	}
	out.WriteString(err.Wrapped.Error())
	out.WriteString(". At")
	for _, st := range err.CallStack {
		out.WriteString(" ")
		out.WriteString(st.String())
	}
	return out.String()
}

// Unwrap lets errors.Is and errors.As see the original error.
func (err *ErrorWithContext) Unwrap() error {
	return err.Wrapped
}

// Wrap adds the caller's stack to err. Returns nil if err is nil. If err was
// already wrapped the existing stack is kept.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var withContext *ErrorWithContext
	if errors.As(err, &withContext) {
		return err
	}
	return &ErrorWithContext{
		Wrapped:   err,
		CallStack: CallStack(5, 1),
	}
}

// Wrapf is Wrap plus a formatted message that is prepended to the error
// text. Returns nil if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	var withContext *ErrorWithContext
	if errors.As(err, &withContext) {
		return &ErrorWithContext{
			Wrapped:   withContext.Wrapped,
			CallStack: withContext.CallStack,
			Context:   append([]string{msg}, withContext.Context...),
		}
	}
	return &ErrorWithContext{
		Wrapped:   err,
		CallStack: CallStack(5, 1),
		Context:   []string{msg},
	}
}

// Fmt is fmt.Errorf with the caller's stack attached.
func Fmt(format string, args ...interface{}) error {
	return &ErrorWithContext{
		Wrapped:   fmt.Errorf(format, args...),
		CallStack: CallStack(5, 1),
	}
}

// Unwrap returns the original error, stripped of any context added by this
// package.
func Unwrap(err error) error {
	var withContext *ErrorWithContext
	if errors.As(err, &withContext) {
		return withContext.Wrapped
	}
	return err
}
