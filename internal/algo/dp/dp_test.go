package dp

import (
	"strings"
	"testing"

	"github.com/san-kum/stepviz/internal/step"
)

func lastGrid(t *testing.T, p step.Producer) *step.GridStep {
	t.Helper()
	s, ok := step.Materialize(p).Last().(*step.GridStep)
	if !ok {
		t.Fatal("expected *step.GridStep")
	}
	return s
}

func TestFibonacci(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0}, {1, 1}, {2, 1}, {10, 55}, {20, 6765},
	}

	for _, tt := range tests {
		got := lastGrid(t, Fibonacci(tt.n))
		if got.Result == nil || *got.Result != tt.want {
			t.Errorf("Fibonacci(%d) result = %v, want %d", tt.n, got.Result, tt.want)
		}
		if len(got.Grid[0]) != tt.n+1 {
			t.Errorf("Fibonacci(%d) table width %d", tt.n, len(got.Grid[0]))
		}
	}

	if got := lastGrid(t, Fibonacci(-1)); got.Result != nil || !strings.Contains(got.Message, "between") {
		t.Errorf("negative n: %q", got.Message)
	}
}

func TestLCS(t *testing.T) {
	tests := []struct {
		a, b string
		want int
		seq  string
	}{
		{"ABCBDAB", "BDCABA", 4, ""},
		{"AGGTAB", "GXTXAYB", 4, `"GTAB"`},
		{"", "abc", 0, `""`},
		{"abc", "def", 0, `""`},
	}

	for _, tt := range tests {
		got := lastGrid(t, LCS(tt.a, tt.b))
		if got.Result == nil || *got.Result != tt.want {
			t.Errorf("LCS(%q, %q) = %v, want %d", tt.a, tt.b, got.Result, tt.want)
		}
		if tt.seq != "" && !strings.Contains(got.Message, tt.seq) {
			t.Errorf("LCS(%q, %q) message %q missing %s", tt.a, tt.b, got.Message, tt.seq)
		}
	}
}

func TestKnapsack(t *testing.T) {
	items := []Item{{Weight: 1, Value: 1}, {Weight: 3, Value: 4}, {Weight: 4, Value: 5}, {Weight: 5, Value: 7}}
	got := lastGrid(t, Knapsack(items, 7))
	if got.Result == nil || *got.Result != 9 {
		t.Fatalf("best value = %v, want 9", got.Result)
	}
	weight := 0
	for _, i := range got.Solution {
		weight += items[i].Weight
	}
	if weight > 7 {
		t.Errorf("chosen items %v exceed capacity", got.Solution)
	}

	bad := lastGrid(t, Knapsack([]Item{{Weight: 0, Value: 3}}, 5))
	if !strings.Contains(bad.Message, "non-positive weight") {
		t.Errorf("message %q", bad.Message)
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
	}

	for _, tt := range tests {
		got := lastGrid(t, EditDistance(tt.a, tt.b))
		if *got.Result != tt.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, *got.Result, tt.want)
		}
	}
}

func TestSteps_DoNotShareGrid(t *testing.T) {
	seq := step.Materialize(Fibonacci(5))
	first := seq.At(0).(*step.GridStep)
	if first.Grid[0][5] != 0 {
		t.Fatalf("first step already shows f(5): %v", first.Grid)
	}
	if seq.Last().(*step.GridStep).Grid[0][5] != 5 {
		t.Error("last step missing f(5)")
	}
}
