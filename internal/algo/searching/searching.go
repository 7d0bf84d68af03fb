// Package searching provides instrumented linear and binary search.
package searching

import (
	"fmt"
	"slices"

	"github.com/san-kum/stepviz/internal/step"
)

func snap(a []int, line int, msg string) *step.ArrayStep {
	return &step.ArrayStep{Meta: step.Meta{Message: msg, Line: line}, Array: a, Pivot: -1, Found: -1}
}

func tooLong(input []int) step.Producer {
	return step.Single(snap([]int{}, 0, fmt.Sprintf("Arrays are limited to %d elements, got %d.", step.MaxArray, len(input))))
}

var LinearCode = []string{
	"for i := range a {",
	"    if a[i] == target { return i }",
	"return -1",
}

func Linear(input []int, target int) step.Producer {
	if len(input) > step.MaxArray {
		return tooLong(input)
	}
	return func(yield func(step.Step) bool) {
		a := slices.Clone(input)
		if len(a) == 0 {
			step.Emit(yield, snap(a, 3, "Array is empty; nothing to search."))
			return
		}
		for i, v := range a {
			st := snap(a, 2, fmt.Sprintf("Compare a[%d]=%d with %d.", i, v, target))
			st.Comparing = []int{i}
			if !step.Emit(yield, st) {
				return
			}
			if v == target {
				st := snap(a, 2, fmt.Sprintf("Found %d at index %d.", target, i))
				st.Found = i
				step.Emit(yield, st)
				return
			}
		}
		step.Emit(yield, snap(a, 3, fmt.Sprintf("%d is not in the array.", target)))
	}
}

var BinaryCode = []string{
	"lo, hi := 0, n-1",
	"for lo <= hi {",
	"    mid := (lo+hi)/2",
	"    if a[mid] == target { return mid }",
	"    if a[mid] < target { lo = mid+1 } else { hi = mid-1 }",
	"return -1",
}

// Binary requires ascending input; unsorted input ends in a single
// explanatory Step.
func Binary(input []int, target int) step.Producer {
	if len(input) > step.MaxArray {
		return tooLong(input)
	}
	if !slices.IsSorted(input) {
		return step.Single(snap(slices.Clone(input), 0, "Binary search needs a sorted array; sort the input first."))
	}
	return func(yield func(step.Step) bool) {
		a := slices.Clone(input)
		lo, hi := 0, len(a)-1
		st := snap(a, 1, fmt.Sprintf("Search for %d in [%d..%d].", target, lo, hi))
		if hi >= lo {
			st.Range = []int{lo, hi}
		}
		if !step.Emit(yield, st) {
			return
		}
		for lo <= hi {
			mid := lo + (hi-lo)/2
			st := snap(a, 3, fmt.Sprintf("Check middle index %d (value %d).", mid, a[mid]))
			st.Range = []int{lo, hi}
			st.Pivot = mid
			st.Comparing = []int{mid}
			if !step.Emit(yield, st) {
				return
			}
			switch {
			case a[mid] == target:
				st := snap(a, 4, fmt.Sprintf("Found %d at index %d.", target, mid))
				st.Found = mid
				step.Emit(yield, st)
				return
			case a[mid] < target:
				lo = mid + 1
				st = snap(a, 5, fmt.Sprintf("%d < %d; discard the left half.", a[mid], target))
			default:
				hi = mid - 1
				st = snap(a, 5, fmt.Sprintf("%d > %d; discard the right half.", a[mid], target))
			}
			if lo <= hi {
				st.Range = []int{lo, hi}
			}
			if !step.Emit(yield, st) {
				return
			}
		}
		step.Emit(yield, snap(a, 6, fmt.Sprintf("%d is not in the array.", target)))
	}
}
