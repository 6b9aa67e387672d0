package main

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// push and pop are the whole stack API of a slice: append at the end,
// shrink len by one. pop on an empty slice reports ok=false instead of
// panicking on s[-1].
func push[T any](s []T, v T) []T {
	return append(s, v)
}

func pop[T any](s []T) ([]T, T, bool) {
	var zero T
	if len(s) == 0 {
		return s, zero, false
	}
	last := s[len(s)-1]
	return s[:len(s)-1], last, true
}

func demoVector(w io.Writer) {
	nums := []int{1, 2, 3}
	nums = push(nums, 4)
	fmt.Fprintln(w, debugList(nums))

	nums, _, _ = pop(nums)
	fmt.Fprintln(w, debugList(nums))

	var names []string // nil slice: append works without make
	names = push(names, "String1")
	names = push(names, "String2")
	names = push(names, "String3")
	fmt.Fprintln(w, debugList(names))

	slices.Reverse(names)
	fmt.Fprintln(w, debugList(names))

	vect := make([]int32, 0, 2) // len 0, room for 2
	fmt.Fprintln(w, cap(vect))
}

// intRange yields lo, lo+1, ..., hi-1. Nothing is allocated until someone
// collects it.
func intRange(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := lo; i < hi; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// collectRange materializes [lo, hi) into a slice. A range is not a slice;
// it has to be collected first.
func collectRange(lo, hi int) []int {
	return slices.Collect(intRange(lo, hi))
}

func demoRange(w io.Writer) {
	v := collectRange(0, 5)
	fmt.Fprintln(w, debugList(v))
}
