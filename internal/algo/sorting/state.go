package sorting

import (
	"fmt"
	"slices"

	"github.com/san-kum/stepviz/internal/step"
)

// arrayState is the scratch buffer shared by a producer and its recursive
// helpers. Snapshots alias it; step.Emit copies before handing them out.
type arrayState struct {
	a      []int
	sorted []bool
}

func newArrayState(input []int) *arrayState {
	return &arrayState{a: slices.Clone(input), sorted: make([]bool, len(input))}
}

func (s *arrayState) snap(line int, msg string) *step.ArrayStep {
	idx := make([]int, 0, len(s.a))
	for i, ok := range s.sorted {
		if ok {
			idx = append(idx, i)
		}
	}
	return &step.ArrayStep{
		Meta:   step.Meta{Message: msg, Line: line},
		Array:  s.a,
		Sorted: idx,
		Pivot:  -1,
		Found:  -1,
	}
}

func (s *arrayState) markSorted(lo, hi int) {
	for i := lo; i <= hi; i++ {
		s.sorted[i] = true
	}
}

func (s *arrayState) swap(i, j int) {
	s.a[i], s.a[j] = s.a[j], s.a[i]
}

// finish emits the terminal Step with every index resolved.
func (s *arrayState) finish(yield func(step.Step) bool, line int, msg string) bool {
	s.markSorted(0, len(s.a)-1)
	return step.Emit(yield, s.snap(line, msg))
}

func pair(i, j int) []int {
	if i > j {
		i, j = j, i
	}
	return []int{i, j}
}

// trivial covers inputs that need no sorting, and inputs too long to animate.
func trivial(input []int) (step.Producer, bool) {
	if len(input) > step.MaxArray {
		return step.Single(&step.ArrayStep{
			Meta:  step.Meta{Message: fmt.Sprintf("Arrays are limited to %d elements, got %d.", step.MaxArray, len(input))},
			Array: []int{},
			Pivot: -1,
			Found: -1,
		}), true
	}
	switch len(input) {
	case 0:
		return step.Single(&step.ArrayStep{
			Meta:  step.Meta{Message: "Array is empty; nothing to sort."},
			Array: []int{},
			Pivot: -1,
			Found: -1,
		}), true
	case 1:
		return step.Single(&step.ArrayStep{
			Meta:   step.Meta{Message: "A single element is already sorted."},
			Array:  slices.Clone(input),
			Sorted: []int{0},
			Pivot:  -1,
			Found:  -1,
		}), true
	}
	return nil, false
}
