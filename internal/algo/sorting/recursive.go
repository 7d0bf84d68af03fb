package sorting

import (
	"fmt"
	"slices"

	"github.com/san-kum/stepviz/internal/step"
)

var MergeCode = []string{
	"mergeSort(lo, hi):",
	"    if lo >= hi { return }",
	"    mid := (lo+hi)/2",
	"    mergeSort(lo, mid); mergeSort(mid+1, hi)",
	"    compare left[i] and right[j]",
	"    write the smaller one to a[k]",
	"    copy the leftovers",
	"done",
}

// Merge is a top-down merge sort. Steps from nested calls appear between the
// split Step of their caller and its merge Steps.
func Merge(input []int) step.Producer {
	if p, ok := trivial(input); ok {
		return p
	}
	return func(yield func(step.Step) bool) {
		s := newArrayState(input)
		if !mergeSort(yield, s, 0, len(s.a)-1) {
			return
		}
		s.finish(yield, 8, "Array is sorted.")
	}
}

func mergeSort(yield func(step.Step) bool, s *arrayState, lo, hi int) bool {
	if lo >= hi {
		return true
	}
	mid := lo + (hi-lo)/2
	st := s.snap(3, fmt.Sprintf("Split [%d..%d] into [%d..%d] and [%d..%d].", lo, hi, lo, mid, mid+1, hi))
	st.Range = []int{lo, hi}
	if !step.Emit(yield, st) {
		return false
	}
	if !mergeSort(yield, s, lo, mid) || !mergeSort(yield, s, mid+1, hi) {
		return false
	}
	return merge(yield, s, lo, mid, hi)
}

func merge(yield func(step.Step) bool, s *arrayState, lo, mid, hi int) bool {
	left := slices.Clone(s.a[lo : mid+1])
	right := slices.Clone(s.a[mid+1 : hi+1])
	i, j, k := 0, 0, lo

	emitWrite := func(line int, v int, from string) bool {
		s.a[k] = v
		st := s.snap(line, fmt.Sprintf("Write %d from the %s half to index %d.", v, from, k))
		st.Range = []int{lo, hi}
		st.Swapping = []int{k}
		k++
		return step.Emit(yield, st)
	}

	for i < len(left) && j < len(right) {
		st := s.snap(5, fmt.Sprintf("Compare %d and %d.", left[i], right[j]))
		st.Range = []int{lo, hi}
		st.Aux = append(slices.Clone(left[i:]), right[j:]...)
		st.AuxLabel = "pending"
		if !step.Emit(yield, st) {
			return false
		}
		if left[i] <= right[j] {
			if !emitWrite(6, left[i], "left") {
				return false
			}
			i++
		} else {
			if !emitWrite(6, right[j], "right") {
				return false
			}
			j++
		}
	}
	for ; i < len(left); i++ {
		if !emitWrite(7, left[i], "left") {
			return false
		}
	}
	for ; j < len(right); j++ {
		if !emitWrite(7, right[j], "right") {
			return false
		}
	}
	if lo == 0 && hi == len(s.a)-1 {
		s.markSorted(lo, hi)
	}
	st := s.snap(7, fmt.Sprintf("Merged [%d..%d].", lo, hi))
	st.Range = []int{lo, hi}
	return step.Emit(yield, st)
}

var QuickCode = []string{
	"quickSort(lo, hi):",
	"    if lo >= hi { mark sorted; return }",
	"    pivot := a[hi]; i := lo",
	"    for j := lo; j < hi; j++ {",
	"        if a[j] < pivot { swap(a[i], a[j]); i++ }",
	"    swap(a[i], a[hi])",
	"    quickSort(lo, i-1); quickSort(i+1, hi)",
	"done",
}

// Quick is quicksort with the Lomuto partition scheme.
func Quick(input []int) step.Producer {
	if p, ok := trivial(input); ok {
		return p
	}
	return func(yield func(step.Step) bool) {
		s := newArrayState(input)
		if !quickSort(yield, s, 0, len(s.a)-1) {
			return
		}
		s.finish(yield, 8, "Array is sorted.")
	}
}

func quickSort(yield func(step.Step) bool, s *arrayState, lo, hi int) bool {
	if lo > hi {
		return true
	}
	if lo == hi {
		s.sorted[lo] = true
		st := s.snap(2, fmt.Sprintf("%d is alone in its range and is in place.", s.a[lo]))
		st.Range = []int{lo, hi}
		return step.Emit(yield, st)
	}

	pivot := s.a[hi]
	st := s.snap(3, fmt.Sprintf("Partition [%d..%d] around pivot %d.", lo, hi, pivot))
	st.Range = []int{lo, hi}
	st.Pivot = hi
	if !step.Emit(yield, st) {
		return false
	}

	i := lo
	for j := lo; j < hi; j++ {
		st := s.snap(5, fmt.Sprintf("Compare %d with pivot %d.", s.a[j], pivot))
		st.Range = []int{lo, hi}
		st.Pivot = hi
		st.Comparing = pair(j, hi)
		if !step.Emit(yield, st) {
			return false
		}
		if s.a[j] < pivot {
			if i != j {
				s.swap(i, j)
				st := s.snap(5, fmt.Sprintf("Swap %d and %d.", s.a[j], s.a[i]))
				st.Range = []int{lo, hi}
				st.Pivot = hi
				st.Swapping = pair(i, j)
				if !step.Emit(yield, st) {
					return false
				}
			}
			i++
		}
	}
	if i != hi {
		s.swap(i, hi)
	}
	s.sorted[i] = true
	st = s.snap(6, fmt.Sprintf("Pivot %d lands at index %d.", pivot, i))
	st.Range = []int{lo, hi}
	st.Pivot = i
	st.Swapping = pair(i, hi)
	if !step.Emit(yield, st) {
		return false
	}

	return quickSort(yield, s, lo, i-1) && quickSort(yield, s, i+1, hi)
}
