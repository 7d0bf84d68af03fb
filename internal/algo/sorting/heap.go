package sorting

import (
	"fmt"

	"github.com/san-kum/stepviz/internal/step"
)

var HeapCode = []string{
	"for i := n/2-1; i >= 0; i-- { siftDown(i, n) }",
	"siftDown: swap with the larger child while it is bigger",
	"for end := n-1; end > 0; end-- { swap(a[0], a[end]); siftDown(0, end) }",
	"done",
}

func Heap(input []int) step.Producer {
	if p, ok := trivial(input); ok {
		return p
	}
	return func(yield func(step.Step) bool) {
		s := newArrayState(input)
		n := len(s.a)
		if !step.Emit(yield, s.snap(1, "Build a max-heap.")) {
			return
		}
		for i := n/2 - 1; i >= 0; i-- {
			if !siftDown(yield, s, i, n) {
				return
			}
		}
		for end := n - 1; end > 0; end-- {
			s.swap(0, end)
			s.sorted[end] = true
			st := s.snap(3, fmt.Sprintf("Move max %d to index %d.", s.a[end], end))
			st.Swapping = pair(0, end)
			if !step.Emit(yield, st) {
				return
			}
			if !siftDown(yield, s, 0, end) {
				return
			}
		}
		s.finish(yield, 4, "Array is sorted.")
	}
}

func siftDown(yield func(step.Step) bool, s *arrayState, root, size int) bool {
	for {
		largest := root
		l, r := 2*root+1, 2*root+2
		if l < size {
			st := s.snap(2, fmt.Sprintf("Compare %d with left child %d.", s.a[largest], s.a[l]))
			st.Comparing = pair(largest, l)
			st.Range = []int{0, size - 1}
			if !step.Emit(yield, st) {
				return false
			}
			if s.a[l] > s.a[largest] {
				largest = l
			}
		}
		if r < size {
			st := s.snap(2, fmt.Sprintf("Compare %d with right child %d.", s.a[largest], s.a[r]))
			st.Comparing = pair(largest, r)
			st.Range = []int{0, size - 1}
			if !step.Emit(yield, st) {
				return false
			}
			if s.a[r] > s.a[largest] {
				largest = r
			}
		}
		if largest == root {
			return true
		}
		s.swap(root, largest)
		st := s.snap(2, fmt.Sprintf("Sift %d down.", s.a[largest]))
		st.Swapping = pair(root, largest)
		st.Range = []int{0, size - 1}
		if !step.Emit(yield, st) {
			return false
		}
		root = largest
	}
}
