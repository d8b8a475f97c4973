package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	infoColor     = color.New(color.FgYellow)
	progressColor = color.New(color.FgBlue)
	successColor  = color.New(color.FgGreen)
	errorColor    = color.New(color.FgRed)
)

// console prints status lines for a person at a terminal. Colors are dropped
// when the output is not a terminal.
type console struct {
	out io.Writer
	err io.Writer
}

func (c console) info(format string, args ...interface{}) {
	_, _ = infoColor.Fprintf(c.out, "ℹ "+format+"\n", args...)
}

func (c console) progress(format string, args ...interface{}) {
	_, _ = progressColor.Fprintf(c.out, "🔄 "+format+"\n", args...)
}

func (c console) heading(text string) {
	_, _ = progressColor.Fprintf(c.out, "\n--- %s ---\n\n", text)
}

func (c console) text(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c console) success(format string, args ...interface{}) {
	_, _ = successColor.Fprintf(c.out, "\n✓ "+format+"\n", args...)
}

func (c console) failure(msg string) {
	_, _ = errorColor.Fprintf(c.err, "✗ Error: %s\n", msg)
}
