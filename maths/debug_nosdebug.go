//go:build !sdebug

package maths

// Debug enables the per-iteration trace of 'Fibonacci', set by building with the 'sdebug' tag.
const Debug = false
