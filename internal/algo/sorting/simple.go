package sorting

import (
	"fmt"

	"github.com/san-kum/stepviz/internal/step"
)

var BubbleCode = []string{
	"for i := 0; i < n-1; i++ {",
	"    swapped := false",
	"    for j := 0; j < n-i-1; j++ {",
	"        if a[j] > a[j+1] {",
	"            a[j], a[j+1] = a[j+1], a[j]; swapped = true",
	"    mark a[n-i-1] sorted",
	"    if !swapped { break }",
	"done",
}

// Bubble sorts with early exit on a pass that makes no swaps.
func Bubble(input []int) step.Producer {
	if p, ok := trivial(input); ok {
		return p
	}
	return func(yield func(step.Step) bool) {
		s := newArrayState(input)
		n := len(s.a)
		if !step.Emit(yield, s.snap(1, "Starting bubble sort.")) {
			return
		}
		for i := 0; i < n-1; i++ {
			swapped := false
			for j := 0; j < n-i-1; j++ {
				st := s.snap(4, fmt.Sprintf("Compare %d and %d.", s.a[j], s.a[j+1]))
				st.Comparing = pair(j, j+1)
				if !step.Emit(yield, st) {
					return
				}
				if s.a[j] > s.a[j+1] {
					s.swap(j, j+1)
					swapped = true
					st := s.snap(5, fmt.Sprintf("Swap %d and %d.", s.a[j+1], s.a[j]))
					st.Swapping = pair(j, j+1)
					if !step.Emit(yield, st) {
						return
					}
				}
			}
			s.sorted[n-i-1] = true
			if !step.Emit(yield, s.snap(6, fmt.Sprintf("%d is in its final position.", s.a[n-i-1]))) {
				return
			}
			if !swapped {
				if !step.Emit(yield, s.snap(7, "No swaps in this pass; the array is sorted.")) {
					return
				}
				break
			}
		}
		s.finish(yield, 8, "Array is sorted.")
	}
}

var SelectionCode = []string{
	"for i := 0; i < n-1; i++ {",
	"    smallest := i",
	"    for j := i+1; j < n; j++ {",
	"        if a[j] < a[smallest] { smallest = j }",
	"    swap(a[i], a[smallest])",
	"    mark a[i] sorted",
	"done",
}

func Selection(input []int) step.Producer {
	if p, ok := trivial(input); ok {
		return p
	}
	return func(yield func(step.Step) bool) {
		s := newArrayState(input)
		n := len(s.a)
		for i := 0; i < n-1; i++ {
			smallest := i
			st := s.snap(2, fmt.Sprintf("Assume %d at index %d is the minimum.", s.a[i], i))
			st.Pivot = smallest
			if !step.Emit(yield, st) {
				return
			}
			for j := i + 1; j < n; j++ {
				st := s.snap(4, fmt.Sprintf("Compare %d with current minimum %d.", s.a[j], s.a[smallest]))
				st.Comparing = pair(smallest, j)
				st.Pivot = smallest
				if !step.Emit(yield, st) {
					return
				}
				if s.a[j] < s.a[smallest] {
					smallest = j
					st := s.snap(4, fmt.Sprintf("New minimum %d at index %d.", s.a[smallest], smallest))
					st.Pivot = smallest
					if !step.Emit(yield, st) {
						return
					}
				}
			}
			if smallest != i {
				s.swap(i, smallest)
				st := s.snap(5, fmt.Sprintf("Swap %d into index %d.", s.a[i], i))
				st.Swapping = pair(i, smallest)
				if !step.Emit(yield, st) {
					return
				}
			}
			s.sorted[i] = true
			if !step.Emit(yield, s.snap(6, fmt.Sprintf("%d is in its final position.", s.a[i]))) {
				return
			}
		}
		s.finish(yield, 7, "Array is sorted.")
	}
}

var InsertionCode = []string{
	"for i := 1; i < n; i++ {",
	"    key := a[i]; j := i-1",
	"    for j >= 0 && a[j] > key {",
	"        a[j+1] = a[j]; j--",
	"    a[j+1] = key",
	"done",
}

func Insertion(input []int) step.Producer {
	if p, ok := trivial(input); ok {
		return p
	}
	return func(yield func(step.Step) bool) {
		s := newArrayState(input)
		n := len(s.a)
		s.sorted[0] = true
		if !step.Emit(yield, s.snap(1, "The first element forms a sorted prefix.")) {
			return
		}
		for i := 1; i < n; i++ {
			key := s.a[i]
			st := s.snap(2, fmt.Sprintf("Insert %d into the sorted prefix.", key))
			st.Pivot = i
			if !step.Emit(yield, st) {
				return
			}
			j := i - 1
			for j >= 0 {
				st := s.snap(3, fmt.Sprintf("Compare %d with %d.", s.a[j], key))
				st.Comparing = pair(j, j+1)
				if !step.Emit(yield, st) {
					return
				}
				if s.a[j] <= key {
					break
				}
				s.swap(j, j+1)
				st = s.snap(4, fmt.Sprintf("Shift %d right.", s.a[j+1]))
				st.Swapping = pair(j, j+1)
				if !step.Emit(yield, st) {
					return
				}
				j--
			}
			s.markSorted(0, i)
			if !step.Emit(yield, s.snap(5, fmt.Sprintf("Placed %d at index %d.", key, j+1))) {
				return
			}
		}
		s.finish(yield, 6, "Array is sorted.")
	}
}
