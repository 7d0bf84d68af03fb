package sorting

import (
	"fmt"
	"slices"

	"github.com/san-kum/stepviz/internal/step"
)

// MaxCountingValue bounds the auxiliary count array.
const MaxCountingValue = 999

var CountingCode = []string{
	"counts := make([]int, max+1)",
	"for _, v := range a { counts[v]++ }",
	"for v, c := range counts { write v c times }",
	"done",
}

func Counting(input []int) step.Producer {
	if p, ok := trivial(input); ok {
		return p
	}
	maxVal := slices.Max(input)
	if minVal := slices.Min(input); minVal < 0 {
		return step.Single(&step.ArrayStep{
			Meta:  step.Meta{Message: fmt.Sprintf("Counting sort needs non-negative values; found %d.", minVal)},
			Array: slices.Clone(input),
			Pivot: -1,
			Found: -1,
		})
	}
	if maxVal > MaxCountingValue {
		return step.Single(&step.ArrayStep{
			Meta:  step.Meta{Message: fmt.Sprintf("Counting sort is limited to values up to %d; found %d.", MaxCountingValue, maxVal)},
			Array: slices.Clone(input),
			Pivot: -1,
			Found: -1,
		})
	}

	return func(yield func(step.Step) bool) {
		s := newArrayState(input)
		counts := make([]int, maxVal+1)

		withCounts := func(line int, msg string) *step.ArrayStep {
			st := s.snap(line, msg)
			st.Aux = counts
			st.AuxLabel = "count"
			return st
		}

		if !step.Emit(yield, withCounts(1, fmt.Sprintf("Allocate %d counters for values 0..%d.", len(counts), maxVal))) {
			return
		}
		for i, v := range s.a {
			counts[v]++
			st := withCounts(2, fmt.Sprintf("Count %d (now %d).", v, counts[v]))
			st.Comparing = []int{i}
			if !step.Emit(yield, st) {
				return
			}
		}

		k := 0
		for v, c := range counts {
			for ; c > 0; c-- {
				s.a[k] = v
				s.sorted[k] = true
				st := withCounts(3, fmt.Sprintf("Write %d to index %d.", v, k))
				st.Swapping = []int{k}
				if !step.Emit(yield, st) {
					return
				}
				k++
			}
		}
		st := withCounts(4, "Array is sorted.")
		s.markSorted(0, len(s.a)-1)
		st.Sorted = step.Indices(0, len(s.a)-1)
		step.Emit(yield, st)
	}
}
