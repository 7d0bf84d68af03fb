package sorting

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/stepviz/internal/step"
)

var producers = map[string]func([]int) step.Producer{
	"bubble":    Bubble,
	"selection": Selection,
	"insertion": Insertion,
	"merge":     Merge,
	"quick":     Quick,
	"heap":      Heap,
	"counting":  Counting,
}

func last(t *testing.T, p step.Producer) *step.ArrayStep {
	t.Helper()
	seq := step.Materialize(p)
	st, ok := seq.Last().(*step.ArrayStep)
	if !ok {
		t.Fatalf("expected *step.ArrayStep, got %T", seq.Last())
	}
	return st
}

func TestProducers_MatchReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inputs := [][]int{
		{},
		{1},
		{2, 1},
		{1, 2, 3, 4},
		{4, 3, 2, 1},
		{3, 3, 3},
		{5, 3, 1, 4, 2},
	}
	for i := 0; i < 20; i++ {
		n := rng.Intn(12) + 2
		in := make([]int, n)
		for j := range in {
			in[j] = rng.Intn(50)
		}
		inputs = append(inputs, in)
	}

	for name, produce := range producers {
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs {
				orig := slices.Clone(in)
				got := last(t, produce(in))

				want := slices.Clone(in)
				slices.Sort(want)
				if diff := cmp.Diff(want, got.Array); diff != "" {
					t.Errorf("input %v (-want +got):\n%s", in, diff)
				}
				if len(in) > 0 && !cmp.Equal(got.Sorted, step.Indices(0, len(in)-1)) {
					t.Errorf("input %v: final sorted set %v does not cover every index", in, got.Sorted)
				}
				if !slices.Equal(in, orig) {
					t.Errorf("producer mutated its input: %v", in)
				}
			}
		})
	}
}

func TestBubble_Scenario(t *testing.T) {
	got := last(t, Bubble([]int{5, 3, 1, 4, 2}))
	if !cmp.Equal(got.Array, []int{1, 2, 3, 4, 5}) {
		t.Errorf("array = %v", got.Array)
	}
	if !cmp.Equal(got.Sorted, []int{0, 1, 2, 3, 4}) {
		t.Errorf("sorted = %v", got.Sorted)
	}
}

func TestBubble_EarlyExitStillResolves(t *testing.T) {
	seq := step.Materialize(Bubble([]int{1, 2, 3, 4, 5}))
	var sawEarlyExit bool
	for _, s := range seq.All() {
		if strings.HasPrefix(s.Info().Message, "No swaps") {
			sawEarlyExit = true
		}
	}
	if !sawEarlyExit {
		t.Fatal("expected an early exit on sorted input")
	}
	got := seq.Last().(*step.ArrayStep)
	if len(got.Sorted) != 5 {
		t.Errorf("final sorted = %v, want all indices", got.Sorted)
	}
}

func TestCounting_Scenario(t *testing.T) {
	got := last(t, Counting([]int{4, 2, 2, 8, 3, 3, 1}))
	if !cmp.Equal(got.Array, []int{1, 2, 2, 3, 3, 4, 8}) {
		t.Errorf("array = %v", got.Array)
	}
	if got.AuxLabel != "count" || len(got.Aux) != 9 {
		t.Errorf("aux = %v (%s)", got.Aux, got.AuxLabel)
	}
}

func TestCounting_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  string
	}{
		{"negative", []int{3, -1, 2}, "non-negative"},
		{"too large", []int{1, MaxCountingValue + 1}, "limited"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := step.Materialize(Counting(tt.input))
			if seq.Len() != 1 {
				t.Fatalf("expected a single terminal step, got %d", seq.Len())
			}
			if msg := seq.Last().Info().Message; !strings.Contains(msg, tt.want) {
				t.Errorf("message %q does not mention %q", msg, tt.want)
			}
		})
	}
}

func TestProducers_Deterministic(t *testing.T) {
	in := []int{9, 4, 7, 1, 8, 2}
	for name, produce := range producers {
		a := step.Materialize(produce(in))
		b := step.Materialize(produce(in))
		if a.Len() != b.Len() {
			t.Errorf("%s: lengths differ %d vs %d", name, a.Len(), b.Len())
			continue
		}
		for i := 0; i < a.Len(); i++ {
			if diff := cmp.Diff(a.At(i), b.At(i)); diff != "" {
				t.Errorf("%s: step %d differs:\n%s", name, i, diff)
				break
			}
		}
	}
}

func TestMerge_NestedStepsInterleave(t *testing.T) {
	msgs := step.Materialize(Merge([]int{4, 3, 2, 1})).Messages()

	pos := func(prefix string) int {
		for i, m := range msgs {
			if strings.HasPrefix(m, prefix) {
				return i
			}
		}
		t.Fatalf("no message starting with %q in %v", prefix, msgs)
		return -1
	}

	top := pos("Split [0..3]")
	leftSplit := pos("Split [0..1]")
	leftMerge := pos("Merged [0..1]")
	rightSplit := pos("Split [2..3]")
	topMerge := pos("Merged [0..3]")

	if !(top < leftSplit && leftSplit < leftMerge && leftMerge < rightSplit && rightSplit < topMerge) {
		t.Errorf("recursive steps out of order: %d %d %d %d %d", top, leftSplit, leftMerge, rightSplit, topMerge)
	}
}

func TestQuick_PivotSteps(t *testing.T) {
	seq := step.Materialize(Quick([]int{3, 1, 2}))
	var pivots int
	for _, s := range seq.All() {
		if strings.HasPrefix(s.Info().Message, "Pivot") {
			pivots++
			if s.(*step.ArrayStep).Pivot < 0 {
				t.Error("pivot step without pivot index")
			}
		}
	}
	if pivots == 0 {
		t.Error("expected pivot placement steps")
	}
}

func TestProducers_StopEarly(t *testing.T) {
	for name, produce := range producers {
		n := 0
		for range produce([]int{5, 4, 3, 2, 1}) {
			n++
			if n == 3 {
				break
			}
		}
		if n != 3 {
			t.Errorf("%s: consumer break not honored, n=%d", name, n)
		}
	}
}

func TestProducers_ArrayLimit(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		steps func(int) bool
	}{
		{"at limit", step.MaxArray, func(n int) bool { return n > 1 }},
		{"over limit", step.MaxArray + 1, func(n int) bool { return n == 1 }},
		{"far over limit", 100_000, func(n int) bool { return n == 1 }},
	}

	for name, produce := range producers {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				in := make([]int, tt.n)
				for i := range in {
					in[i] = tt.n - i
				}
				seq := step.Materialize(produce(in))
				if !tt.steps(seq.Len()) {
					t.Fatalf("unexpected step count %d", seq.Len())
				}
				if tt.n <= step.MaxArray {
					return
				}
				want := fmt.Sprintf("Arrays are limited to %d elements, got %d.", step.MaxArray, tt.n)
				if msg := seq.Last().Info().Message; msg != want {
					t.Errorf("message %q, want %q", msg, want)
				}
			})
		}
	}
}
