package metrics

import (
	"testing"

	"github.com/san-kum/stepviz/internal/algo/graph"
	"github.com/san-kum/stepviz/internal/algo/hashing"
	"github.com/san-kum/stepviz/internal/algo/sorting"
	"github.com/san-kum/stepviz/internal/step"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_Bubble(t *testing.T) {
	seq := step.Materialize(sorting.Bubble([]int{5, 3, 1, 4, 2}))
	got := Summarize(seq)

	assert.Equal(t, 10.0, got["comparisons"])
	assert.Equal(t, 7.0, got["swaps"])
	assert.Equal(t, 0.0, got["probes"])
	assert.Equal(t, 0.0, got["backtracks"])
}

func TestProbes_AbsentKey(t *testing.T) {
	seq := step.Materialize(hashing.Search(hashing.Build(7, 10, 3, 17), 24))
	got := Summarize(seq, NewProbes())

	assert.Equal(t, map[string]float64{"probes": 4}, got)
}

func TestBacktracks_DFS(t *testing.T) {
	g := graph.Graph{N: 3, Edges: []step.Edge{{From: 0, To: 1}, {From: 1, To: 2}}}
	seq := step.Materialize(graph.DFS(g, 0))

	assert.Equal(t, 3.0, Summarize(seq, NewBacktracks())["backtracks"])
}

func TestBacktracks_UsesFlagNotMessage(t *testing.T) {
	seq := step.Materialize(func(yield func(step.Step) bool) {
		_ = yield(&step.ArrayStep{Meta: step.Meta{Message: "No backtracking needed."}, Pivot: -1, Found: -1}) &&
			yield(&step.GridStep{Meta: step.Meta{Message: "Remove the queen."}, Backtrack: true}) &&
			yield(&step.GraphStep{Meta: step.Meta{Message: "Return to 0."}, Backtrack: true}) &&
			yield(&step.GraphStep{Meta: step.Meta{Message: "Backtrack discussion only."}})
	})

	assert.Equal(t, 2.0, Summarize(seq, NewBacktracks())["backtracks"])
}

func TestSummarize_ResetsBetweenRuns(t *testing.T) {
	seq := step.Materialize(sorting.Bubble([]int{2, 1}))
	m := NewSwaps()

	first := Summarize(seq, m)
	second := Summarize(seq, m)
	assert.Equal(t, first, second)
	assert.Equal(t, 1.0, second["swaps"])
}

func TestCounter_Reset(t *testing.T) {
	m := NewComparisons()
	m.Observe(&step.ArrayStep{Comparing: []int{0, 1}})
	m.Observe(&step.GridStep{Compared: []step.Cell{{Row: 0, Col: 0}}})
	m.Observe(&step.BitStep{})
	assert.Equal(t, 2.0, m.Value())

	m.Reset()
	assert.Zero(t, m.Value())
}
