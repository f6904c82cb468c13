package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StdoutLogger prints log lines prefixed with a timestamp and the level of the statement.
type StdoutLogger struct {
	// Writer is where log lines are written, when nil 'os.Stdout' is used.
	Writer io.Writer

	// MinLevel is the least verbose level which will be printed, anything below it is dropped.
	MinLevel Level

	// Now is used to timestamp log lines, when nil 'time.Now' is used.
	Now func() time.Time
}

// Log method for the StdoutLogger which adds prefix dependant on the level and prints the message.
func (s StdoutLogger) Log(level Level, format string, args ...any) {
	if level < s.MinLevel {
		return
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	writer := io.Writer(os.Stdout)
	if s.Writer != nil {
		writer = s.Writer
	}

	fmt.Fprintf(writer, "%s %s: %s\n", now().Format(time.RFC3339Nano), level, fmt.Sprintf(format, args...))
}
