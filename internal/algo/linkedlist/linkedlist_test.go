package linkedlist

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/stepviz/internal/step"
)

func walk(s *step.ListStep) []int {
	var out []int
	for i, n := s.Head, 0; i != nilNode && n <= len(s.Values); i, n = s.Next[i], n+1 {
		out = append(out, s.Values[i])
	}
	return out
}

func TestReverse(t *testing.T) {
	seq := step.Materialize(Reverse([]int{1, 2, 3, 4}))
	if diff := cmp.Diff([]int{1, 2, 3, 4}, walk(seq.At(0).(*step.ListStep))); diff != "" {
		t.Errorf("first step (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4, 3, 2, 1}, walk(seq.Last().(*step.ListStep))); diff != "" {
		t.Errorf("last step (-want +got):\n%s", diff)
	}

	empty := step.Materialize(Reverse(nil))
	if empty.Len() != 1 {
		t.Errorf("empty list produced %d steps", empty.Len())
	}
}

func TestDetectCycle(t *testing.T) {
	tests := []struct {
		name  string
		tail  int
		cycle bool
	}{
		{"acyclic", -1, false},
		{"self loop at end", 4, true},
		{"back to head", 0, true},
		{"middle", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := step.Materialize(DetectCycle([]int{1, 2, 3, 4, 5}, tt.tail)).Last().Info().Message
			if got := strings.Contains(msg, "has a cycle"); got != tt.cycle {
				t.Errorf("terminal %q, cycle=%v", msg, tt.cycle)
			}
		})
	}
}

func TestListLimit(t *testing.T) {
	long := make([]int, step.MaxArray+1)
	want := fmt.Sprintf("Lists are limited to %d nodes, got %d.", step.MaxArray, len(long))

	for name, p := range map[string]step.Producer{
		"reverse": Reverse(long),
		"cycle":   DetectCycle(long, 0),
	} {
		t.Run(name, func(t *testing.T) {
			seq := step.Materialize(p)
			if seq.Len() != 1 {
				t.Fatalf("expected 1 step, got %d", seq.Len())
			}
			ls := seq.Last().(*step.ListStep)
			if ls.Message != want || ls.Head != nilNode {
				t.Errorf("got %q head=%d", ls.Message, ls.Head)
			}
		})
	}
}
