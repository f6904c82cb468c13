package maths

import "golang.org/x/exp/constraints"

// Fibonacci returns the nth Fibonacci number where Fibonacci(0) is 0 and Fibonacci(1) is 1.
//
// The sum is accumulated in T so results which don't fit wrap around using T's fixed-width arithmetic, and any n below
// two other than one returns 0 (including negative n).
//
// NOTE: When built with the 'sdebug' tag each iteration is traced at 'log.LevelTrace', see 'SetTraceLogger'.
func Fibonacci[T constraints.Signed](n T) T {
	var (
		prev2 T
		prev1 T = 1
		acc   T
	)

	if n == 1 {
		acc = 1
	}

	// Counting from 1 with the increment inside the body stops 'i' from overflowing when n is the largest value of T.
	for i := T(1); i < n; {
		i++

		acc = prev2 + prev1
		prev2 = prev1
		prev1 = acc

		if Debug {
			traceStep(i, acc, prev2, prev1)
		}
	}

	return acc
}
