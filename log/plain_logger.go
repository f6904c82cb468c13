package log

import (
	"fmt"
	"io"
	"os"
)

// PlainLogger writes each formatted message on its own line with no timestamp or level prefix, regardless of level.
type PlainLogger struct {
	writer io.Writer
}

// NewPlainLogger returns a PlainLogger which writes to the given writer, a nil writer means 'os.Stdout'.
func NewPlainLogger(w io.Writer) PlainLogger {
	if w == nil {
		w = os.Stdout
	}

	return PlainLogger{writer: w}
}

// Log writes the formatted message followed by a newline.
func (p PlainLogger) Log(_ Level, format string, args ...any) {
	fmt.Fprintf(p.writer, format+"\n", args...)
}
