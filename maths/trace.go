package maths

import (
	"os"

	"golang.org/x/exp/constraints"

	"github.com/pmarathe25/SBuildr/log"
)

// traceLogger receives the per-iteration trace of 'Fibonacci' in builds with 'Debug' enabled.
var traceLogger = log.NewWrappedLogger(log.NewPlainLogger(os.Stdout))

// SetTraceLogger sets the logger which receives the per-iteration trace of 'Fibonacci', a nil logger discards the
// trace. By default plain lines are written to stdout.
//
// NOTE: This should be called before 'Fibonacci' is used concurrently, the logger is not guarded by a lock.
func SetTraceLogger(l log.Logger) {
	traceLogger = log.NewWrappedLogger(l)
}

func traceStep[T constraints.Signed](i, acc, prev2, prev1 T) {
	traceLogger.Tracef("Fib[%d] = %d, prev2 = %d, prev1 = %d", i, acc, prev2, prev1)
}
