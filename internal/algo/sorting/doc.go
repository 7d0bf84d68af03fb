// Package sorting provides instrumented comparison and distribution sorts.
//
// Every producer works on its own copy of the input, emits an [step.ArrayStep]
// at each comparison, swap or write, and always finishes with a Step whose
// Sorted set covers every index, even when the algorithm exits early.
package sorting
