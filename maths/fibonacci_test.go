package maths

import (
	"bytes"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmarathe25/SBuildr/log"
)

func TestFibonacci(t *testing.T) {
	type testCase struct {
		name     string
		n        int
		expected int
	}

	cases := []testCase{
		{name: "Zero", n: 0, expected: 0},
		{name: "One", n: 1, expected: 1},
		{name: "Two", n: 2, expected: 1},
		{name: "Three", n: 3, expected: 2},
		{name: "Ten", n: 10, expected: 55},
		{name: "Twenty", n: 20, expected: 6765},
		{name: "Thirty", n: 30, expected: 832040},
		{name: "ThirtyFive", n: 35, expected: 9227465},
		{name: "Negative", n: -5, expected: 0},
		{name: "NegativeOne", n: -1, expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Fibonacci(tc.n))
		})
	}
}

func TestFibonacciRecurrence(t *testing.T) {
	require.Equal(t, int64(0), Fibonacci(int64(0)))
	require.Equal(t, int64(1), Fibonacci(int64(1)))

	for n := int64(2); n <= 92; n++ {
		require.Equal(t, Fibonacci(n-1)+Fibonacci(n-2), Fibonacci(n), "n=%d", n)
	}
}

func TestFibonacciIdempotent(t *testing.T) {
	for n := 0; n < 50; n++ {
		require.Equal(t, Fibonacci(n), Fibonacci(n))
	}
}

func TestFibonacciWraparound(t *testing.T) {
	type testCase struct {
		name     string
		actual   int64
		expected int64
	}

	cases := []testCase{
		{name: "Int8Fits", actual: int64(Fibonacci(int8(11))), expected: 89},
		{name: "Int8Wraps", actual: int64(Fibonacci(int8(12))), expected: -112},
		{name: "Int16Fits", actual: int64(Fibonacci(int16(23))), expected: 28657},
		{name: "Int16Wraps", actual: int64(Fibonacci(int16(24))), expected: -19168},
		{name: "Int32Fits", actual: int64(Fibonacci(int32(46))), expected: 1836311903},
		{name: "Int32Wraps", actual: int64(Fibonacci(int32(47))), expected: -1323752223},
		{name: "Int64Fits", actual: Fibonacci(int64(92)), expected: 7540113804746346429},
		{name: "Int64Wraps", actual: Fibonacci(int64(93)), expected: -6246583658587674878},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.actual)
		})
	}
}

func TestFibonacciWraparoundMatchesTruncation(t *testing.T) {
	for n := int64(0); n <= 120; n++ {
		wide := Fibonacci(n)

		require.Equal(t, int8(wide), Fibonacci(int8(n)), "n=%d", n)
		require.Equal(t, int16(wide), Fibonacci(int16(n)), "n=%d", n)
		require.Equal(t, int32(wide), Fibonacci(int32(n)), "n=%d", n)
	}
}

func TestFibonacciMaxInput(t *testing.T) {
	// Must terminate rather than loop forever on the increment past the largest int8.
	require.Equal(t, int8(Fibonacci(int64(math.MaxInt8))), Fibonacci(int8(math.MaxInt8)))
	require.Equal(t, int8(0), Fibonacci(int8(math.MinInt8)))
}

func TestFibonacciConcurrent(t *testing.T) {
	var (
		wg      sync.WaitGroup
		results = make([]int, 64)
	)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			results[i] = Fibonacci(40)
		}(i)
	}

	wg.Wait()

	for _, result := range results {
		require.Equal(t, 102334155, result)
	}
}

func TestTraceStep(t *testing.T) {
	var buf bytes.Buffer

	captureTrace(t, &buf)

	traceStep(2, 1, 1, 1)
	traceStep(int8(3), int8(2), int8(1), int8(2))

	require.Equal(t, "Fib[2] = 1, prev2 = 1, prev1 = 1\nFib[3] = 2, prev2 = 1, prev1 = 2\n", buf.String())
}

func TestSetTraceLoggerNilDiscards(t *testing.T) {
	captureTrace(t, &bytes.Buffer{})
	SetTraceLogger(nil)

	require.NotPanics(t, func() {
		traceStep(2, 1, 1, 1)
		Fibonacci(10)
	})
}

func TestFibonacciTraceDisabled(t *testing.T) {
	if Debug {
		t.Skip("built with the 'sdebug' tag")
	}

	var buf bytes.Buffer

	captureTrace(t, &buf)

	require.Equal(t, 55, Fibonacci(10))
	require.Empty(t, buf.String())
}

// captureTrace sends the trace to w for the duration of the test.
func captureTrace(t *testing.T, w io.Writer) {
	previous := traceLogger
	t.Cleanup(func() { traceLogger = previous })

	SetTraceLogger(log.NewPlainLogger(w))
}
