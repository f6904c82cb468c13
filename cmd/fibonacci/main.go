// Command fibonacci prints the Fibonacci number for each integer given on the command line.
//
// Usage:
//
//	fibonacci N [N...]
//
// The width of the integers is selected with FIBONACCI_BITS (8, 16, 32 or 64) and results which don't fit wrap around.
// Build with '-tags sdebug' to trace every iteration to stdout, FIBONACCI_TRACE=false silences the trace again.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pmarathe25/SBuildr/log"
	"github.com/pmarathe25/SBuildr/maths"
)

// ErrNoArguments is returned when the binary is run without any input.
var ErrNoArguments = errors.New("expected at least one integer argument")

func main() {
	cfg, err := configure(os.Stderr)
	if err != nil {
		os.Exit(1)
	}

	setupTrace(cfg, os.Stdout)

	if err := run(os.Args[1:], cfg.bits, os.Stdout); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// configure installs a logger writing to w and loads the configuration, any error is logged before being returned.
func configure(w io.Writer) (config, error) {
	log.SetLogger(log.StdoutLogger{Writer: w, MinLevel: log.LevelInfo})

	cfg, err := loadConfig()
	if err != nil {
		log.Errorf("%v", err)
		return config{}, err
	}

	log.SetLogger(log.StdoutLogger{Writer: w, MinLevel: cfg.logLevel})

	return cfg, nil
}

// setupTrace points the per-iteration trace at out, or discards it when tracing is turned off.
func setupTrace(cfg config, out io.Writer) {
	if !cfg.trace {
		maths.SetTraceLogger(nil)
		return
	}

	maths.SetTraceLogger(log.NewPlainLogger(out))
}

// run computes and writes the Fibonacci number for each of the arguments using integers of the given width.
func run(args []string, bits int, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w, usage: fibonacci N [N...]", ErrNoArguments)
	}

	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, bits)
		if err != nil {
			return fmt.Errorf("invalid argument '%s' for %d-bit integers: %w", arg, bits, err)
		}

		if n < 0 {
			log.Warnf("Negative input %d has no Fibonacci number, returning 0", n)
		}

		log.Debugf("Computing Fibonacci(%d) using %d-bit integers", n, bits)

		result, err := compute(n, bits)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(out, result); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	return nil
}

// compute returns Fibonacci(n) calculated with integers of the given width.
func compute(n int64, bits int) (int64, error) {
	switch bits {
	case 8:
		return int64(maths.Fibonacci(int8(n))), nil
	case 16:
		return int64(maths.Fibonacci(int16(n))), nil
	case 32:
		return int64(maths.Fibonacci(int32(n))), nil
	case 64:
		return maths.Fibonacci(n), nil
	}

	return 0, fmt.Errorf("%w: %d", ErrUnsupportedWidth, bits)
}
